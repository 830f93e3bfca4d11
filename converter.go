package tint

import (
	"fmt"

	"github.com/gogpu/tint/internal/colormath"
)

// Converter converts colors from one color space to another. The
// conversion pipeline is built once at construction (decode source
// transfer curve, one fused linear matrix including Bradford chromatic
// adaptation, encode destination transfer curve) and is immutable
// afterwards, so a Converter is safe for concurrent use.
//
// Alpha is never touched: all conversions are unpremultiplied, and the
// transfer curves apply to the color channels only.
type Converter struct {
	src, dst *ColorSpace

	// fused takes linear source RGB to linear destination RGB.
	fused colormath.Mat3

	srcCurve colormath.Curve
	dstCurve colormath.Curve
}

// NewConverter builds a Converter from src to dst. It returns an error
// wrapping [ErrInvalidColorSpace] if either space cannot yield a
// conversion matrix. Transfer curves are applied at the endpoints only;
// no gamma-aware interpolation happens mid-conversion.
func NewConverter(src, dst *ColorSpace) (*Converter, error) {
	if src == nil || dst == nil {
		return nil, fmt.Errorf("tint: nil color space: %w", ErrInvalidColorSpace)
	}

	srcCurve := src.curve()
	dstCurve := dst.curve()
	if !srcCurve.Valid() {
		return nil, fmt.Errorf("tint: %s: bad transfer curve: %w", src.Name, ErrInvalidColorSpace)
	}
	if !dstCurve.Valid() {
		return nil, fmt.Errorf("tint: %s: bad transfer curve: %w", dst.Name, ErrInvalidColorSpace)
	}

	srcToXYZ, ok := src.toXYZ()
	if !ok {
		return nil, fmt.Errorf("tint: %s: degenerate primaries: %w", src.Name, ErrInvalidColorSpace)
	}
	dstToXYZ, ok := dst.toXYZ()
	if !ok {
		return nil, fmt.Errorf("tint: %s: degenerate primaries: %w", dst.Name, ErrInvalidColorSpace)
	}
	xyzToDst, ok := colormath.Invert(dstToXYZ)
	if !ok {
		return nil, fmt.Errorf("tint: %s: singular conversion matrix: %w", dst.Name, ErrInvalidColorSpace)
	}

	fused := colormath.Mul(xyzToDst, srcToXYZ)

	// Differing white points need chromatic adaptation between the two
	// XYZ frames.
	if src.White != dst.White {
		srcWhite, ok := src.whiteXYZ()
		if !ok {
			return nil, fmt.Errorf("tint: %s: bad white point: %w", src.Name, ErrInvalidColorSpace)
		}
		dstWhite, ok := dst.whiteXYZ()
		if !ok {
			return nil, fmt.Errorf("tint: %s: bad white point: %w", dst.Name, ErrInvalidColorSpace)
		}
		adapt := colormath.Adaptation(srcWhite, dstWhite)
		fused = colormath.Mul(xyzToDst, colormath.Mul(adapt, srcToXYZ))
	}

	return &Converter{
		src:      src,
		dst:      dst,
		fused:    fused,
		srcCurve: srcCurve,
		dstCurve: dstCurve,
	}, nil
}

// Source returns the source color space.
func (cv *Converter) Source() *ColorSpace { return cv.src }

// Destination returns the destination color space.
func (cv *Converter) Destination() *ColorSpace { return cv.dst }

// Convert converts a single color.
func (cv *Converter) Convert(c RGBA) RGBA {
	r, g, b := cv.convertComponents(float32(c.R), float32(c.G), float32(c.B))
	return RGBA{R: float64(r), G: float64(g), B: float64(b), A: c.A}
}

// ConvertSlice converts a batch of colors and returns a new slice of the
// same length. The input is not modified.
func (cv *Converter) ConvertSlice(colors []RGBA) []RGBA {
	out := make([]RGBA, len(colors))
	for i, c := range colors {
		out[i] = cv.Convert(c)
	}
	return out
}

// ConvertPacked converts a single packed 0xAARRGGBB color.
func (cv *Converter) ConvertPacked(p Packed) Packed {
	return cv.Convert(FromPacked(p)).Packed()
}

// ConvertPackedSlice converts a batch of packed colors and returns a new
// slice of the same length.
func (cv *Converter) ConvertPackedSlice(colors []Packed) []Packed {
	out := make([]Packed, len(colors))
	for i, p := range colors {
		out[i] = cv.ConvertPacked(p)
	}
	return out
}

// convertPixels converts 8-bit RGBA pixel data in place. The slice length
// must be a multiple of 4; pixels are unpremultiplied.
func (cv *Converter) convertPixels(pix []uint8) {
	for i := 0; i+3 < len(pix); i += 4 {
		r, g, b := cv.convertComponents(
			float32(pix[i])/255,
			float32(pix[i+1])/255,
			float32(pix[i+2])/255,
		)
		pix[i] = quantize(r)
		pix[i+1] = quantize(g)
		pix[i+2] = quantize(b)
	}
}

// convertComponents runs the fused pipeline on one color triple.
func (cv *Converter) convertComponents(r, g, b float32) (float32, float32, float32) {
	v := colormath.Vec3{
		cv.srcCurve.Decode(r),
		cv.srcCurve.Decode(g),
		cv.srcCurve.Decode(b),
	}
	v = colormath.MulVec(cv.fused, v)
	return clamp01f(cv.dstCurve.Encode(v[0])),
		clamp01f(cv.dstCurve.Encode(v[1])),
		clamp01f(cv.dstCurve.Encode(v[2]))
}

func clamp01f(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func quantize(v float32) uint8 {
	return uint8(v*255 + 0.5)
}
