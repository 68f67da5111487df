package msdf

import "log/slog"

// EdgeColor determines which RGB channels an edge contributes to.
// Different colors at sharp corners are what preserve corner sharpness in
// the reconstructed field.
type EdgeColor uint8

const (
	// ColorBlack means the edge contributes to no channels.
	ColorBlack EdgeColor = 0

	// ColorRed means the edge contributes to the red channel.
	ColorRed EdgeColor = 1 << iota

	// ColorGreen means the edge contributes to the green channel.
	ColorGreen

	// ColorBlue means the edge contributes to the blue channel.
	ColorBlue

	// ColorYellow combines red and green channels.
	ColorYellow = ColorRed | ColorGreen

	// ColorCyan combines green and blue channels.
	ColorCyan = ColorGreen | ColorBlue

	// ColorMagenta combines red and blue channels.
	ColorMagenta = ColorRed | ColorBlue

	// ColorWhite means the edge contributes to all channels.
	ColorWhite = ColorRed | ColorGreen | ColorBlue
)

// String returns a string representation of the edge color.
func (c EdgeColor) String() string {
	switch c {
	case ColorBlack:
		return "Black"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorYellow:
		return "Yellow"
	case ColorCyan:
		return "Cyan"
	case ColorMagenta:
		return "Magenta"
	case ColorWhite:
		return "White"
	default:
		return "Unknown"
	}
}

// Has returns true if the color includes all channels of ch.
func (c EdgeColor) Has(ch EdgeColor) bool { return c&ch == ch }

// HasRed returns true if the color includes the red channel.
func (c EdgeColor) HasRed() bool { return c&ColorRed != 0 }

// HasGreen returns true if the color includes the green channel.
func (c EdgeColor) HasGreen() bool { return c&ColorGreen != 0 }

// HasBlue returns true if the color includes the blue channel.
func (c EdgeColor) HasBlue() bool { return c&ColorBlue != 0 }

// rotation is the fixed cycle of two-channel colors used when switching at
// sharp corners. Any two neighbors in the cycle differ while still sharing
// one channel, which the median reconstruction relies on.
var rotation = [3]EdgeColor{ColorCyan, ColorMagenta, ColorYellow}

// nextColor returns the rotation color following c.
func nextColor(c EdgeColor) EdgeColor {
	for i, rc := range rotation {
		if rc == c {
			return rotation[(i+1)%len(rotation)]
		}
	}
	return rotation[0]
}

// ColorEdges assigns channel combinations to every edge of the shape so
// that no two edges meeting at a sharp corner carry an identical channel
// set. A corner is sharp when the tangent direction deviates from straight
// by more than angleThreshold radians.
//
// Fully smooth contours (no sharp corners) receive a uniform all-channel
// assignment, degrading to a plain single-channel distance field for that
// contour. Contours too small to alternate colors consistently fall back
// to the same uniform assignment; this is recovered locally and logged,
// never surfaced as an error.
func ColorEdges(shape *Shape, angleThreshold float64) {
	for i, contour := range shape.Contours {
		colorContour(contour, i, angleThreshold)
	}
}

func colorContour(c *Contour, index int, angleThreshold float64) {
	n := len(c.Edges)
	if n == 0 {
		return
	}

	// corners[i] is set when the vertex between edge i and edge i+1 is
	// sharp.
	var corners []int
	for i := 0; i < n; i++ {
		if isSharp(c.CornerAngle(i), angleThreshold) {
			corners = append(corners, i)
		}
	}

	switch {
	case len(corners) == 0:
		// Fully smooth loop.
		for i := range c.Edges {
			c.Edges[i].Color = ColorWhite
		}

	case n < 3:
		// Too few edges to keep adjacent colors distinct around the
		// cycle; strict alternation is impossible.
		for i := range c.Edges {
			c.Edges[i].Color = ColorWhite
		}
		Logger().Warn("msdf: contour too small for consistent coloring, using uniform channels",
			slog.Int("contour", index),
			slog.Int("edges", n),
			slog.Int("sharpCorners", len(corners)))

	case len(corners) == 1:
		// A single sharp corner (teardrop). One color run would wrap
		// onto itself across the corner, so split the loop into three
		// runs instead; the interior color switches land on smooth
		// vertices and cost only minor banding.
		colorTeardrop(c, corners[0])

	default:
		colorRuns(c, corners)
	}
}

// isSharp classifies a corner by its tangent deviation from straight.
func isSharp(angle, threshold float64) bool {
	if angle < 0 {
		angle = -angle
	}
	return angle > threshold
}

// colorTeardrop colors a contour that has exactly one sharp corner, at the
// vertex between edge corner and edge corner+1.
func colorTeardrop(c *Contour, corner int) {
	n := len(c.Edges)
	for i := 0; i < n; i++ {
		// Walk starting just past the corner and cut the loop in thirds.
		c.Edges[(corner+1+i)%n].Color = rotation[3*i/n]
	}
}

// colorRuns colors a contour with two or more sharp corners: each run of
// edges between consecutive sharp corners shares a color, and the color
// rotates at every sharp corner. The walk starts just past the first sharp
// corner so the wrap-around vertex is always one of the sharp corners.
func colorRuns(c *Contour, corners []int) {
	n := len(c.Edges)
	k := len(corners)

	color := rotation[0]
	run := 0
	start := corners[0] + 1
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		c.Edges[idx].Color = color
		// A sharp corner at the end of this edge starts the next run.
		if run < k-1 && idx == corners[(run+1)%k] {
			run++
			color = nextColor(color)
		}
	}

	// The final run meets the first across the sharp wrap corner; if the
	// rotation cycled all the way around, recolor the final run with the
	// color distinct from both of its sharp-corner neighbors.
	first := c.Edges[(corners[0]+1)%n].Color
	lastStart := (corners[k-1] + 1) % n
	last := c.Edges[lastStart].Color
	if last == first {
		prev := c.Edges[corners[k-1]].Color
		repaired := rotation[0]
		for _, rc := range rotation {
			if rc != first && rc != prev {
				repaired = rc
				break
			}
		}
		for i := lastStart; ; i = (i + 1) % n {
			c.Edges[i].Color = repaired
			if i == corners[0] {
				break
			}
		}
	}
}
