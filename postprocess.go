package msdf

import "math"

// MedianFilter returns a copy of the field with each channel replaced by
// the median of its 3x3 neighborhood. This suppresses isolated sampling
// noise at the cost of slightly rounding fine detail; it is optional and
// most useful on very small fields.
func MedianFilter(field *DistanceField) *DistanceField {
	if field == nil {
		return nil
	}

	result := &DistanceField{
		Data:      make([]float32, len(field.Data)),
		Width:     field.Width,
		Height:    field.Height,
		Channels:  field.Channels,
		Transform: field.Transform,
		Range:     field.Range,
	}

	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			for ch := 0; ch < field.Channels; ch++ {
				var window [9]float32
				idx := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx := clampInt(x+dx, 0, field.Width-1)
						ny := clampInt(y+dy, 0, field.Height-1)
						window[idx] = field.At(nx, ny, ch)
						idx++
					}
				}
				result.Set(x, y, ch, median9(window))
			}
		}
	}
	return result
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// median9 finds the median of 9 values with a partial sorting network,
// which avoids sorting the whole window.
func median9(vals [9]float32) float32 {
	swap := func(i, j int) {
		if vals[i] > vals[j] {
			vals[i], vals[j] = vals[j], vals[i]
		}
	}
	swap(0, 1)
	swap(3, 4)
	swap(6, 7)
	swap(1, 2)
	swap(4, 5)
	swap(7, 8)
	swap(0, 1)
	swap(3, 4)
	swap(6, 7)
	swap(0, 3)
	swap(3, 6)
	swap(0, 3)
	swap(1, 4)
	swap(4, 7)
	swap(1, 4)
	swap(2, 5)
	swap(5, 8)
	swap(2, 5)
	swap(1, 3)
	swap(5, 7)
	swap(2, 6)
	swap(4, 6)
	swap(2, 4)
	swap(2, 3)
	swap(5, 6)
	return vals[4]
}

// ErrorCorrection clamps channels that stray too far from the per-texel
// median, in place. Texels where two channels cross between samples can
// produce interpolation artifacts at render time; pulling outliers toward
// the median keeps the reconstructed distance stable. threshold is in
// shape units.
func ErrorCorrection(field *DistanceField, threshold float64) {
	if field == nil || field.Channels < 3 {
		return
	}
	limit := float32(threshold)

	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			t := field.texel(x, y)
			med := median3(t[0], t[1], t[2])
			for ch := 0; ch < 3; ch++ {
				if float32(math.Abs(float64(t[ch]-med))) > limit {
					if t[ch] > med {
						t[ch] = med + limit
					} else {
						t[ch] = med - limit
					}
				}
			}
		}
	}
}

// median3 returns the median of three values.
func median3(a, b, c float32) float32 {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b = c
	}
	if a > b {
		b = a
	}
	return b
}
