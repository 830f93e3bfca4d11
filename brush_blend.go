package tint

// BlendBrush combines two brushes with a blend mode: B is blended over A
// at every sampled point. It is the brush analogue of compositing two
// layers.
//
// BlendBrush is introspectable: color space conversion recursively
// converts both operands and rebuilds the composite with the same blend
// mode and transform. If either operand is of an unconvertible kind it
// passes through unchanged inside the rebuilt composite.
type BlendBrush struct {
	// A is the destination operand.
	A Brush

	// B is the source operand, blended over A.
	B Brush

	// Mode is the blend mode applied at each sampled point.
	Mode BlendMode

	// Transform is the local coordinate transform.
	Transform Matrix
}

// NewBlendBrush creates a brush blending b over a with the given mode.
// Returns nil if either operand is nil.
func NewBlendBrush(a, b Brush, mode BlendMode) *BlendBrush {
	if a == nil || b == nil {
		return nil
	}
	return &BlendBrush{A: a, B: b, Mode: mode, Transform: Identity()}
}

// WithTransform returns a new BlendBrush with the given local transform.
func (b *BlendBrush) WithTransform(m Matrix) *BlendBrush {
	return &BlendBrush{A: b.A, B: b.B, Mode: b.Mode, Transform: m}
}

// brushMarker implements the sealed Brush interface.
func (*BlendBrush) brushMarker() {}

// LocalTransform implements Brush.
func (b *BlendBrush) LocalTransform() Matrix {
	if b.Transform == (Matrix{}) {
		return Identity()
	}
	return b.Transform
}

// blendOperands implements the composite capability.
func (b *BlendBrush) blendOperands() (Brush, Brush, BlendMode) {
	return b.A, b.B, b.Mode
}

// ColorAt implements Brush. Samples both operands and blends B over A.
func (b *BlendBrush) ColorAt(x, y float64) RGBA {
	p := b.LocalTransform().Invert().TransformPoint(Pt(x, y))
	return Blend(b.B.ColorAt(p.X, p.Y), b.A.ColorAt(p.X, p.Y), b.Mode)
}
