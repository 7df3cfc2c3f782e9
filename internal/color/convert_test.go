package color

import (
	"math"
	"testing"
)

func floatNear(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// TestSRGBToLinearEdgeCases tests edge cases for sRGB to linear conversion.
func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"just above threshold", 0.04046, math.Pow((0.04046+0.055)/1.055, 2.4)},
		{"mid gray", 0.5, math.Pow((0.5+0.055)/1.055, 2.4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-12) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestTransferRoundTrip checks that OETF and EOTF invert each other.
func TestTransferRoundTrip(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		l := float64(i) / 1000
		if got := SRGBToLinear(LinearToSRGB(l)); !floatNear(got, l, 1e-9) {
			t.Errorf("SRGBToLinear(LinearToSRGB(%v)) = %v", l, got)
		}
	}
}

func TestLinearToSRGBSlow(t *testing.T) {
	tests := []struct {
		name   string
		linear float32
		want   uint8
	}{
		{"black", 0.0, 0},
		{"white", 1.0, 255},
		{"below-zero", -0.5, 0},
		{"above-one", 1.5, 255},
		{"mid-linear", 0.5, 188},
		{"nan", float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToSRGBSlow(tt.linear); got != tt.want {
				t.Errorf("LinearToSRGBSlow(%v) = %d, want %d", tt.linear, got, tt.want)
			}
		})
	}
}
