package msdf

import "testing"

func TestSignedDistanceIsCloserThan(t *testing.T) {
	tests := []struct {
		name string
		a, b SignedDistance
		want bool
	}{
		{"smaller magnitude", SignedDistance{Distance: 1}, SignedDistance{Distance: -2}, true},
		{"larger magnitude", SignedDistance{Distance: -3}, SignedDistance{Distance: 2}, false},
		{"sign ignored", SignedDistance{Distance: -1}, SignedDistance{Distance: 1.5}, true},
		{"tie broken by dot", SignedDistance{Distance: 2, Dot: 0.1}, SignedDistance{Distance: -2, Dot: 0.9}, true},
		{"tie lost by dot", SignedDistance{Distance: 2, Dot: 0.9}, SignedDistance{Distance: -2, Dot: 0.1}, false},
		{"exact tie", SignedDistance{Distance: 2, Dot: 0.5}, SignedDistance{Distance: 2, Dot: 0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.IsCloserThan(tt.b); got != tt.want {
				t.Errorf("IsCloserThan = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSignedDistanceCombine(t *testing.T) {
	near := SignedDistance{Distance: 0.5}
	far := SignedDistance{Distance: -4}

	if got := near.Combine(far); got != near {
		t.Errorf("Combine = %v, want %v", got, near)
	}
	if got := far.Combine(near); got != near {
		t.Errorf("Combine = %v, want %v", got, near)
	}

	// Infinite loses to anything real.
	if got := Infinite().Combine(far); got != far {
		t.Errorf("Infinite().Combine = %v, want %v", got, far)
	}
}
