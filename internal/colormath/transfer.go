package colormath

import "github.com/chewxy/math32"

// CurveKind identifies a transfer curve shape.
type CurveKind uint8

const (
	// CurveLinear is the identity curve (no gamma encoding).
	CurveLinear CurveKind = iota
	// CurveSRGB is the piecewise sRGB curve (IEC 61966-2-1).
	CurveSRGB
	// CurveGamma is a pure power curve with a configurable exponent.
	CurveGamma
)

// Curve describes a transfer curve. Gamma is only meaningful for
// CurveGamma.
type Curve struct {
	Kind  CurveKind
	Gamma float32
}

// Valid reports whether the curve is well-formed. A pure power curve
// needs a positive exponent.
func (c Curve) Valid() bool {
	switch c.Kind {
	case CurveLinear, CurveSRGB:
		return true
	case CurveGamma:
		return c.Gamma > 0
	default:
		return false
	}
}

// Decode maps an encoded component to linear light.
func (c Curve) Decode(v float32) float32 {
	switch c.Kind {
	case CurveSRGB:
		if v <= 0.04045 {
			return v / 12.92
		}
		return math32.Pow((v+0.055)/1.055, 2.4)
	case CurveGamma:
		if v <= 0 {
			return 0
		}
		return math32.Pow(v, c.Gamma)
	default:
		return v
	}
}

// Encode maps a linear-light component to its encoded form.
func (c Curve) Encode(v float32) float32 {
	switch c.Kind {
	case CurveSRGB:
		if v <= 0 {
			return 0
		}
		if v <= 0.0031308 {
			return v * 12.92
		}
		return 1.055*math32.Pow(v, 1/2.4) - 0.055
	case CurveGamma:
		if v <= 0 {
			return 0
		}
		return math32.Pow(v, 1/c.Gamma)
	default:
		return v
	}
}
