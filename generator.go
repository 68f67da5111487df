package msdf

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"golang.org/x/image/math/f64"
)

// Config holds distance field generation parameters.
type Config struct {
	// Width and Height are the output texel dimensions.
	Width  int
	Height int

	// Range is the distance band half-width in shape units. Distances
	// beyond it clip during quantization, and the shape bounds are padded
	// by it so the band fits inside the field.
	Range float64

	// AngleThreshold is the corner detection threshold in radians.
	// Joins whose tangents deviate by more than this are sharp corners
	// for edge coloring.
	AngleThreshold float64

	// Subsamples is the number of sub-samples per texel axis. Values
	// above 1 average an NxN sub-grid per texel, smoothing the field at
	// the cost of N-squared sampling work. Zero means 1.
	Subsamples int

	// Workers is the number of goroutines sampling rows. Zero means one
	// per available CPU.
	Workers int
}

// DefaultConfig returns parameters that work well for glyph-sized shapes.
func DefaultConfig() Config {
	return Config{
		Width:          32,
		Height:         32,
		Range:          0.125,
		AngleThreshold: math.Pi / 60, // 3 degrees
	}
}

// Validate checks the configuration and returns an error if a field is
// out of range.
func (c *Config) Validate() error {
	if c.Width < 1 {
		return &ConfigError{Field: "Width", Reason: "must be at least 1"}
	}
	if c.Height < 1 {
		return &ConfigError{Field: "Height", Reason: "must be at least 1"}
	}
	if c.Width > 8192 || c.Height > 8192 {
		return &ConfigError{Field: "Width", Reason: "must be at most 8192"}
	}
	if c.Range <= 0 {
		return &ConfigError{Field: "Range", Reason: "must be positive"}
	}
	if c.AngleThreshold <= 0 || c.AngleThreshold > math.Pi {
		return &ConfigError{Field: "AngleThreshold", Reason: "must be in (0, pi]"}
	}
	if c.Subsamples < 0 || c.Subsamples > 8 {
		return &ConfigError{Field: "Subsamples", Reason: "must be in [0, 8]"}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must be non-negative"}
	}
	return nil
}

// ConfigError reports a configuration validation failure.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "msdf: invalid config." + e.Field + ": " + e.Reason
}

// Generator samples multi-channel signed distance fields from shapes.
type Generator struct {
	config Config
}

// NewGenerator creates a generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// DefaultGenerator creates a generator with default configuration.
func DefaultGenerator() *Generator {
	return NewGenerator(DefaultConfig())
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// SetConfig updates the generator's configuration.
func (g *Generator) SetConfig(config Config) {
	g.config = config
}

// Generate produces a three-channel field from a shape. The shape is
// cloned, normalized and edge-colored before sampling, so the caller's
// shape is never mutated and its input orientation does not matter.
//
// Each texel holds three signed pseudo-distances whose per-texel median
// reconstructs the true distance while preserving corners.
func (g *Generator) Generate(shape *Shape) (*DistanceField, error) {
	return g.generate(shape, 3)
}

// GenerateSingle produces a conventional single-channel signed distance
// field using true distances. Corners round off at the field resolution,
// which is acceptable for soft masks and shadows.
func (g *Generator) GenerateSingle(shape *Shape) (*DistanceField, error) {
	return g.generate(shape, 1)
}

func (g *Generator) generate(shape *Shape, channels int) (*DistanceField, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	if shape == nil || len(shape.Contours) == 0 {
		return nil, fmt.Errorf("nothing to sample: %w", ErrEmptyShape)
	}

	prepared := shape.Clone()
	if err := Normalize(prepared); err != nil {
		return nil, err
	}
	if channels == 3 {
		ColorEdges(prepared, g.config.AngleThreshold)
		if err := checkChannelCoverage(prepared); err != nil {
			return nil, err
		}
	}

	field := NewDistanceField(g.config.Width, g.config.Height, channels)
	field.Range = g.config.Range
	field.Transform = g.fieldTransform(prepared.Bounds())

	g.sample(field, prepared)
	return field, nil
}

// fieldTransform builds the pixel-to-shape affine map: the shape bounds
// padded by Range are fitted into the field with uniform scale and
// centered on the non-limiting axis.
func (g *Generator) fieldTransform(bounds Rect) f64.Aff3 {
	padded := bounds.Expand(g.config.Range)
	w, h := padded.Width(), padded.Height()

	scale := 1.0
	switch {
	case w > 0 && h > 0:
		scale = min(float64(g.config.Width)/w, float64(g.config.Height)/h)
	case w > 0:
		scale = float64(g.config.Width) / w
	case h > 0:
		scale = float64(g.config.Height) / h
	}

	// Center the occupied region within the field.
	tx := (float64(g.config.Width) - w*scale) / 2
	ty := (float64(g.config.Height) - h*scale) / 2

	inv := 1 / scale
	return f64.Aff3{
		inv, 0, padded.MinX - tx*inv,
		0, inv, padded.MinY - ty*inv,
	}
}

// checkChannelCoverage verifies that every channel has at least one edge
// contributing to it after coloring. A channel with no edges would sample
// to nothing and poison the median.
func checkChannelCoverage(shape *Shape) error {
	var covered EdgeColor
	for _, c := range shape.Contours {
		for i := range c.Edges {
			covered |= c.Edges[i].Color
		}
	}
	if covered != ColorWhite {
		return fmt.Errorf("channel coverage %v after coloring: %w", covered, ErrEmptyShape)
	}
	return nil
}

// sample fills the field by partitioning rows across workers.
func (g *Generator) sample(field *DistanceField, shape *Shape) {
	workers := g.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > field.Height {
		workers = field.Height
	}

	rowsPerWorker := (field.Height + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, field.Height)
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			g.sampleRows(field, shape, start, end)
		}(start, end)
	}
	wg.Wait()
}

func (g *Generator) sampleRows(field *DistanceField, shape *Shape, startRow, endRow int) {
	n := max(g.config.Subsamples, 1)
	inv := 1 / float64(n*n)
	for y := startRow; y < endRow; y++ {
		for x := 0; x < field.Width; x++ {
			var acc [3]float64
			for sy := 0; sy < n; sy++ {
				py := float64(y) + (float64(sy)+0.5)/float64(n)
				for sx := 0; sx < n; sx++ {
					px := float64(x) + (float64(sx)+0.5)/float64(n)
					p := field.shapeAt(px, py)
					if field.Channels == 1 {
						acc[0] += trueDistance(shape, p)
						continue
					}
					acc[0] += channelDistance(shape, p, ColorRed)
					acc[1] += channelDistance(shape, p, ColorGreen)
					acc[2] += channelDistance(shape, p, ColorBlue)
				}
			}
			if field.Channels == 1 {
				field.Set(x, y, 0, float32(acc[0]*inv))
				continue
			}
			field.Set(x, y, 0, float32(acc[0]*inv))
			field.Set(x, y, 1, float32(acc[1]*inv))
			field.Set(x, y, 2, float32(acc[2]*inv))
		}
	}
}

// channelDistance samples one color channel at p. Edge selection and
// output are two distinct phases: the nearest edge is chosen by true
// distance with the orthogonality tie-break, and that edge then reports
// its pseudo-distance, extended past its endpoints along the tangents.
// Selecting by pseudo-distance directly would let a distant edge's
// extension ray shadow the genuinely nearest edge.
func channelDistance(shape *Shape, p Point, channel EdgeColor) float64 {
	best := Infinite()
	var bestEdge *Edge
	for _, c := range shape.Contours {
		for i := range c.Edges {
			e := &c.Edges[i]
			if e.Color&channel == 0 {
				continue
			}
			sd, _ := e.SignedDistance(p)
			if sd.IsCloserThan(best) {
				best = sd
				bestEdge = e
			}
		}
	}
	if bestEdge == nil {
		return -math.MaxFloat64
	}
	pd, _ := bestEdge.PseudoDistance(p)
	return pd.Distance
}

// trueDistance samples the plain signed distance at p over all edges.
func trueDistance(shape *Shape, p Point) float64 {
	best := Infinite()
	for _, c := range shape.Contours {
		for i := range c.Edges {
			sd, _ := c.Edges[i].SignedDistance(p)
			if sd.IsCloserThan(best) {
				best = sd
			}
		}
	}
	if best.Distance == math.MaxFloat64 {
		return -math.MaxFloat64
	}
	return best.Distance
}
