package tint

// ColorFilter remaps colors as they are painted. Filters are attached to
// a [Paint] and applied at draw time, after the brush has produced a
// color.
//
// Only [BlendFilter] is introspectable for color space conversion: it
// reports its flat color and blend mode so [Transformer.ApplyPaint] can
// rebuild it with a converted color. Other filter kinds hold no single
// representative color and pass through conversion unchanged.
type ColorFilter interface {
	// filterMarker is an unexported method that seals this interface.
	filterMarker()

	// Filter returns the remapped color for a painted color.
	Filter(c RGBA) RGBA
}

// blendColorer is the capability query answered by flat-color blend
// filters.
type blendColorer interface {
	blendColor() (RGBA, BlendMode)
}

// BlendFilter blends a fixed color over every painted color using a
// blend mode. It is the one filter kind whose color participates in
// color space conversion.
type BlendFilter struct {
	// Color is the flat color blended over painted colors.
	Color RGBA

	// Mode is the blend mode.
	Mode BlendMode
}

// NewBlendFilter creates a filter that blends c over painted colors with
// the given mode.
func NewBlendFilter(c RGBA, mode BlendMode) *BlendFilter {
	return &BlendFilter{Color: c, Mode: mode}
}

// filterMarker implements the sealed ColorFilter interface.
func (*BlendFilter) filterMarker() {}

// Filter implements ColorFilter.
func (f *BlendFilter) Filter(c RGBA) RGBA {
	return Blend(f.Color, c, f.Mode)
}

// blendColor implements the flat-color capability.
func (f *BlendFilter) blendColor() (RGBA, BlendMode) {
	return f.Color, f.Mode
}

// ColorMatrixFilter applies a 4x5 color transformation matrix:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias values. Components are in [0, 1] during
// transformation and clamped afterwards.
//
// A color matrix mixes channels arbitrarily, so it has no representative
// color: color space conversion leaves it unchanged.
type ColorMatrixFilter struct {
	// Matrix is the 4x5 transformation matrix in row-major order.
	Matrix [20]float64
}

// NewColorMatrixFilter creates a color matrix filter with the given matrix.
func NewColorMatrixFilter(matrix [20]float64) *ColorMatrixFilter {
	return &ColorMatrixFilter{Matrix: matrix}
}

// NewSaturationFilter creates a filter that adjusts color saturation.
// factor: 0.0 = grayscale, 1.0 = unchanged, 2.0 = oversaturated
func NewSaturationFilter(factor float64) *ColorMatrixFilter {
	// Luminance weights (Rec. 709)
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)
	inv := 1 - factor
	return &ColorMatrixFilter{
		Matrix: [20]float64{
			inv*lumR + factor, inv * lumG, inv * lumB, 0, 0,
			inv * lumR, inv*lumG + factor, inv * lumB, 0, 0,
			inv * lumR, inv * lumG, inv*lumB + factor, 0, 0,
			0, 0, 0, 1, 0,
		},
	}
}

// filterMarker implements the sealed ColorFilter interface.
func (*ColorMatrixFilter) filterMarker() {}

// Filter implements ColorFilter.
func (f *ColorMatrixFilter) Filter(c RGBA) RGBA {
	m := &f.Matrix
	return RGBA{
		R: clamp01(m[0]*c.R + m[1]*c.G + m[2]*c.B + m[3]*c.A + m[4]),
		G: clamp01(m[5]*c.R + m[6]*c.G + m[7]*c.B + m[8]*c.A + m[9]),
		B: clamp01(m[10]*c.R + m[11]*c.G + m[12]*c.B + m[13]*c.A + m[14]),
		A: clamp01(m[15]*c.R + m[16]*c.G + m[17]*c.B + m[18]*c.A + m[19]),
	}
}
