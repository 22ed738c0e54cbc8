package vecmath

import (
	"image"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestVec2_Fixed(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec2
		expect fixed.Point26_6
	}{
		{"zero", V2(0, 0), fixed.Point26_6{}},
		{"integers", V2(3, -2), fixed.P(3, -2)},
		{"fractions", V2(1.5, 0.25), fixed.Point26_6{X: 96, Y: 16}},
		{"rounding", V2(1.0/128+1e-9, -1.0/128-1e-9), fixed.Point26_6{X: 1, Y: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Fixed()
			if got != tt.expect {
				t.Errorf("%v.Fixed() = %v, want %v", tt.v, got, tt.expect)
			}
			back := FromFixed(got)
			if !back.Approx(tt.v, 1.0/64) {
				t.Errorf("FromFixed(%v) = %v, want ≈ %v", got, back, tt.v)
			}
		})
	}
}

func TestVec2_ImagePoint(t *testing.T) {
	if got := V2(1.4, 2.6).ImagePoint(); got != image.Pt(1, 3) {
		t.Errorf("ImagePoint = %v, want (1,3)", got)
	}
	if got := V2(-1.6, -0.4).ImagePoint(); got != image.Pt(-2, 0) {
		t.Errorf("ImagePoint = %v, want (-2,0)", got)
	}
	if got := FromImagePoint(image.Pt(7, -8)); got != V2(7, -8) {
		t.Errorf("FromImagePoint = %v", got)
	}
}
