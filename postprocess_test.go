package msdf

import (
	"math"
	"testing"
)

func TestMedian9(t *testing.T) {
	tests := []struct {
		name string
		vals [9]float32
		want float32
	}{
		{"sorted", [9]float32{1, 2, 3, 4, 5, 6, 7, 8, 9}, 5},
		{"reversed", [9]float32{9, 8, 7, 6, 5, 4, 3, 2, 1}, 5},
		{"constant", [9]float32{2, 2, 2, 2, 2, 2, 2, 2, 2}, 2},
		{"one outlier", [9]float32{0, 0, 0, 0, 0, 0, 0, 0, 100}, 0},
		{"mixed signs", [9]float32{-3, 1, -2, 0, 4, -1, 2, 3, -4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median9(tt.vals); got != tt.want {
				t.Errorf("median9 = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMedian3(t *testing.T) {
	tests := []struct {
		a, b, c, want float32
	}{
		{1, 2, 3, 2},
		{3, 1, 2, 2},
		{2, 3, 1, 2},
		{-1, 5, 0, 0},
		{7, 7, 7, 7},
	}
	for _, tt := range tests {
		if got := median3(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("median3(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestMedianFilterConstantField(t *testing.T) {
	f := NewDistanceField(5, 5, 3)
	for i := range f.Data {
		f.Data[i] = 0.25
	}
	f.Range = 1

	out := MedianFilter(f)
	if out == f {
		t.Fatal("MedianFilter returned the input field")
	}
	for i, v := range out.Data {
		if v != 0.25 {
			t.Fatalf("data[%d] = %v, want 0.25", i, v)
		}
	}
	if out.Range != f.Range || out.Transform != f.Transform {
		t.Error("MedianFilter dropped field metadata")
	}
}

func TestMedianFilterRemovesSpike(t *testing.T) {
	f := NewDistanceField(5, 5, 1)
	f.Set(2, 2, 0, 100) // isolated noise texel

	out := MedianFilter(f)
	if got := out.At(2, 2, 0); got != 0 {
		t.Errorf("spike survived: %v", got)
	}
	if MedianFilter(nil) != nil {
		t.Error("MedianFilter(nil) != nil")
	}
}

func TestErrorCorrection(t *testing.T) {
	f := NewDistanceField(1, 1, 3)
	f.Set(0, 0, 0, 0.1)
	f.Set(0, 0, 1, 0.2)
	f.Set(0, 0, 2, 5.0) // far from the median

	ErrorCorrection(f, 0.5)

	med := float32(0.2)
	if got := f.At(0, 0, 2); math.Abs(float64(got-(med+0.5))) > 1e-6 {
		t.Errorf("outlier channel = %v, want %v", got, med+0.5)
	}
	// Channels within the threshold stay put.
	if got := f.At(0, 0, 0); got != 0.1 {
		t.Errorf("channel 0 = %v, want 0.1", got)
	}
	if got := f.At(0, 0, 1); got != 0.2 {
		t.Errorf("channel 1 = %v, want 0.2", got)
	}

	// Single-channel fields are left alone.
	single := NewDistanceField(1, 1, 1)
	single.Set(0, 0, 0, 9)
	ErrorCorrection(single, 0.1)
	if got := single.At(0, 0, 0); got != 9 {
		t.Errorf("single-channel field modified: %v", got)
	}
}
