package tint

import (
	"math"
	"testing"
)

// tolerance for floating point color comparisons
const colorEpsilon = 0.01

func colorsEqual(c1, c2 RGBA, epsilon float64) bool {
	return math.Abs(c1.R-c2.R) < epsilon &&
		math.Abs(c1.G-c2.G) < epsilon &&
		math.Abs(c1.B-c2.B) < epsilon &&
		math.Abs(c1.A-c2.A) < epsilon
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"RGB short", "#F00", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"RRGGBB", "#FF0000", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"RRGGBB no hash", "00FF00", RGBA{R: 0, G: 1, B: 0, A: 1}},
		{"RRGGBBAA", "#0000FF80", RGBA{R: 0, G: 0, B: 1, A: 128.0 / 255}},
		{"invalid", "xyz", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestPackedRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		p    Packed
	}{
		{"opaque teal", 0xFF336699},
		{"translucent red", 0x80FF0000},
		{"transparent black", 0x00000000},
		{"opaque white", 0xFFFFFFFF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPacked(tt.p).Packed()
			if got != tt.p {
				t.Errorf("FromPacked(%#x).Packed() = %#x", tt.p, got)
			}
		})
	}
}

func TestFromPackedChannels(t *testing.T) {
	c := FromPacked(0xFF336699)
	want := RGBA{R: 0x33 / 255.0, G: 0x66 / 255.0, B: 0x99 / 255.0, A: 1}
	if !colorsEqual(c, want, 1e-9) {
		t.Errorf("FromPacked(0xFF336699) = %+v, want %+v", c, want)
	}
}

func TestPremultiplyUnpremultiply(t *testing.T) {
	c := RGBA2(0.8, 0.4, 0.2, 0.5)
	pm := c.Premultiply()
	if !colorsEqual(pm, RGBA2(0.4, 0.2, 0.1, 0.5), 1e-9) {
		t.Errorf("Premultiply() = %+v", pm)
	}
	if got := pm.Unpremultiply(); !colorsEqual(got, c, 1e-9) {
		t.Errorf("Unpremultiply() = %+v, want %+v", got, c)
	}

	// Zero alpha collapses to transparent black.
	zero := RGBA2(0.5, 0.5, 0.5, 0).Premultiply().Unpremultiply()
	if !colorsEqual(zero, Transparent, 1e-9) {
		t.Errorf("zero-alpha round trip = %+v", zero)
	}
}

func TestLerp(t *testing.T) {
	got := Red.Lerp(Blue, 0.5)
	want := RGBA{R: 0.5, G: 0, B: 0.5, A: 1}
	if !colorsEqual(got, want, 1e-9) {
		t.Errorf("Red.Lerp(Blue, 0.5) = %+v, want %+v", got, want)
	}
}

func TestIsBlack(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want bool
	}{
		{"opaque black", Black, true},
		{"transparent black", Transparent, true},
		{"white", White, false},
		{"dark but not black", RGBA2(0, 0, 0.004, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsBlack(); got != tt.want {
				t.Errorf("IsBlack(%+v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestFromColorRoundTrip(t *testing.T) {
	orig := RGBA2(0.2, 0.4, 0.6, 0.8)
	got := FromColor(orig.Color())
	if !colorsEqual(got, orig, colorEpsilon) {
		t.Errorf("FromColor(Color()) = %+v, want %+v", got, orig)
	}
}
