package msdf

import (
	"image"
	"image/color"

	"golang.org/x/image/math/f64"
)

// DistanceField is a sampled signed distance grid. Each texel holds
// Channels float32 distances in shape units; positive values are inside
// the shape. Transform maps texel-centre coordinates to shape space, and
// Range is the half-width of the distance band preserved by quantization.
type DistanceField struct {
	Data     []float32
	Width    int
	Height   int
	Channels int

	// Transform maps pixel space to shape space as an affine row-major
	// 2x3 matrix. A texel (x, y) is sampled at Transform applied to
	// (x+0.5, y+0.5).
	Transform f64.Aff3

	// Range is the distance in shape units mapped to half the output
	// value range. Distances beyond it clip during quantization.
	Range float64
}

// NewDistanceField allocates a zeroed field.
func NewDistanceField(width, height, channels int) *DistanceField {
	return &DistanceField{
		Data:     make([]float32, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// At returns the distance stored for texel (x, y) in channel ch.
func (f *DistanceField) At(x, y, ch int) float32 {
	return f.Data[(y*f.Width+x)*f.Channels+ch]
}

// Set stores a distance for texel (x, y) in channel ch.
func (f *DistanceField) Set(x, y, ch int, d float32) {
	f.Data[(y*f.Width+x)*f.Channels+ch] = d
}

// texel returns the slice holding all channels of texel (x, y).
func (f *DistanceField) texel(x, y int) []float32 {
	i := (y*f.Width + x) * f.Channels
	return f.Data[i : i+f.Channels]
}

// ShapePoint returns the shape-space sample position of texel (x, y).
func (f *DistanceField) ShapePoint(x, y int) Point {
	return f.shapeAt(float64(x)+0.5, float64(y)+0.5)
}

// shapeAt maps a fractional pixel position to shape space.
func (f *DistanceField) shapeAt(px, py float64) Point {
	return Point{
		X: f.Transform[0]*px + f.Transform[1]*py + f.Transform[2],
		Y: f.Transform[3]*px + f.Transform[4]*py + f.Transform[5],
	}
}

// quantize maps a signed distance to [0, 1] with 0.5 on the boundary.
func (f *DistanceField) quantize(d float32) float64 {
	v := 0.5 + float64(d)/(2*f.Range)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// NRGBA renders the field into an 8-bit image. Distances map linearly so
// that -Range becomes 0, zero becomes 128, and +Range becomes 255. A
// single-channel field is replicated across R, G and B; alpha is opaque.
func (f *DistanceField) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			t := f.texel(x, y)
			var r, g, b uint8
			switch f.Channels {
			case 1:
				v := uint8(f.quantize(t[0])*255 + 0.5)
				r, g, b = v, v, v
			default:
				r = uint8(f.quantize(t[0])*255 + 0.5)
				g = uint8(f.quantize(t[1])*255 + 0.5)
				b = uint8(f.quantize(t[2])*255 + 0.5)
			}
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
