package tint

import (
	"math"
	"sort"

	"github.com/gogpu/tint/internal/colormath"
)

// ExtendMode defines how gradients and image brushes extend beyond their
// defined bounds.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the pattern.
	ExtendRepeat
	// ExtendReflect mirrors the pattern.
	ExtendReflect
)

// String returns a string representation of the extend mode.
func (e ExtendMode) String() string {
	switch e {
	case ExtendPad:
		return "Pad"
	case ExtendRepeat:
		return "Repeat"
	case ExtendReflect:
		return "Reflect"
	default:
		return "Unknown"
	}
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// GradientKind identifies the geometry of a gradient brush.
type GradientKind int

const (
	// GradientNone marks a non-gradient. It never reaches gradient
	// reconstruction.
	GradientNone GradientKind = iota
	// GradientSolid marks a gradient degenerated to a single color. It
	// never reaches gradient reconstruction either; the solid-color
	// capability handles it first.
	GradientSolid
	// GradientLinear is a linear transition between two endpoints.
	GradientLinear
	// GradientRadial is a circular transition around one center.
	GradientRadial
	// GradientSweep is an angular transition around one center.
	GradientSweep
	// GradientConical is a two-point conical transition between two
	// circles.
	GradientConical
)

// String returns a string representation of the gradient kind.
func (k GradientKind) String() string {
	switch k {
	case GradientNone:
		return "None"
	case GradientSolid:
		return "Solid"
	case GradientLinear:
		return "Linear"
	case GradientRadial:
		return "Radial"
	case GradientSweep:
		return "Sweep"
	case GradientConical:
		return "Conical"
	default:
		return "Unknown"
	}
}

// GradientData is the introspection payload of a gradient brush: enough
// to reconstruct an equivalent brush of the same kind. Field usage varies
// by kind:
//
//   - GradientLinear: Points[0] and Points[1] are the endpoints.
//   - GradientRadial: Points[0] is the center, Radii[1] the radius.
//   - GradientSweep: Points[0] is the center, Angles the sweep range.
//   - GradientConical: Points and Radii describe the two circles.
//
// Stops is an owned copy; mutating it does not affect the brush.
type GradientData struct {
	Kind   GradientKind
	Points [2]Point
	Radii  [2]float64
	Angles [2]float64
	Stops  []ColorStop
	Extend ExtendMode
}

// sortStops sorts color stops by offset. The input is not modified.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})

	return sorted
}

// copyStops returns an owned copy of the stops.
func copyStops(stops []ColorStop) []ColorStop {
	out := make([]ColorStop, len(stops))
	copy(out, stops)
	return out
}

// applyExtendMode applies the extend mode to normalize t to [0, 1].
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

var srgbCurve = colormath.Curve{Kind: colormath.CurveSRGB}

// interpolateColorLinear interpolates between two sRGB-encoded colors in
// linear light. Alpha interpolates directly.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	l1 := [3]float32{
		srgbCurve.Decode(float32(c1.R)),
		srgbCurve.Decode(float32(c1.G)),
		srgbCurve.Decode(float32(c1.B)),
	}
	l2 := [3]float32{
		srgbCurve.Decode(float32(c2.R)),
		srgbCurve.Decode(float32(c2.G)),
		srgbCurve.Decode(float32(c2.B)),
	}

	t32 := float32(t)
	return RGBA{
		R: float64(srgbCurve.Encode(l1[0] + t32*(l2[0]-l1[0]))),
		G: float64(srgbCurve.Encode(l1[1] + t32*(l2[1]-l1[1]))),
		B: float64(srgbCurve.Encode(l1[2] + t32*(l2[2]-l1[2]))),
		A: c1.A + t*(c2.A-c1.A),
	}
}

// colorAtOffset returns the interpolated color at a given offset.
// Handles edge cases: empty stops, single stop, out-of-bounds t.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	// Stops are not required to arrive sorted.
	sorted := sortStops(stops)

	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]

	// Avoid division by zero for coincident stops
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)

	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}

// firstStopColor returns the first stop's color or Transparent if empty.
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	sorted := sortStops(stops)
	return sorted[0].Color
}
