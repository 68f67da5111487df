package msdf

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestDistanceFieldAtSet(t *testing.T) {
	f := NewDistanceField(4, 3, 3)
	if len(f.Data) != 4*3*3 {
		t.Fatalf("data length = %d, want %d", len(f.Data), 4*3*3)
	}

	f.Set(2, 1, 0, 0.25)
	f.Set(2, 1, 2, -0.5)
	if got := f.At(2, 1, 0); got != 0.25 {
		t.Errorf("At(2,1,0) = %v, want 0.25", got)
	}
	if got := f.At(2, 1, 2); got != -0.5 {
		t.Errorf("At(2,1,2) = %v, want -0.5", got)
	}
	if got := f.At(2, 1, 1); got != 0 {
		t.Errorf("At(2,1,1) = %v, want 0", got)
	}
}

func TestDistanceFieldShapePoint(t *testing.T) {
	f := NewDistanceField(4, 4, 3)
	f.Transform = f64.Aff3{
		0.5, 0, -1,
		0, 0.5, 2,
	}

	got := f.ShapePoint(0, 0)
	want := Pt(-0.75, 2.25) // texel centre (0.5, 0.5) scaled and offset
	if got.Distance(want) > 1e-12 {
		t.Errorf("ShapePoint(0,0) = %v, want %v", got, want)
	}

	got = f.ShapePoint(3, 1)
	want = Pt(0.75, 2.75)
	if got.Distance(want) > 1e-12 {
		t.Errorf("ShapePoint(3,1) = %v, want %v", got, want)
	}
}

func TestDistanceFieldNRGBA(t *testing.T) {
	f := NewDistanceField(3, 1, 3)
	f.Range = 1

	// Boundary, deep inside (clipped), deep outside (clipped).
	f.Set(0, 0, 0, 0)
	f.Set(0, 0, 1, 0)
	f.Set(0, 0, 2, 0)
	for ch := 0; ch < 3; ch++ {
		f.Set(1, 0, ch, 5)
		f.Set(2, 0, ch, -5)
	}

	img := f.NRGBA()
	if c := img.NRGBAAt(0, 0); c.R != 128 || c.G != 128 || c.B != 128 || c.A != 255 {
		t.Errorf("boundary texel = %v, want {128 128 128 255}", c)
	}
	if c := img.NRGBAAt(1, 0); c.R != 255 || c.G != 255 || c.B != 255 {
		t.Errorf("inside texel = %v, want 255s", c)
	}
	if c := img.NRGBAAt(2, 0); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("outside texel = %v, want 0s", c)
	}
}

func TestDistanceFieldNRGBASingleChannel(t *testing.T) {
	f := NewDistanceField(1, 1, 1)
	f.Range = 2
	f.Set(0, 0, 0, 1) // halfway into the inside band

	img := f.NRGBA()
	c := img.NRGBAAt(0, 0)
	want := uint8(math.Round((0.5 + 1.0/4) * 255))
	if c.R != want || c.G != want || c.B != want {
		t.Errorf("replicated texel = %v, want all %d", c, want)
	}
}
