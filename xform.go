package tint

// maxBrushDepth bounds recursion over nested blend brushes. Untrusted
// brush graphs cannot be deeper than this; sub-trees beyond the limit
// pass through unconverted.
const maxBrushDepth = 64

// Transformer converts drawing attributes from the sRGB reference space
// into one destination color space. Create one Transformer per target
// surface and reuse it for any number of Apply calls; it holds no mutable
// state after construction and is safe for concurrent use.
type Transformer struct {
	dst  *ColorSpace
	conv *Converter
}

// NewTransformer creates a Transformer for the given destination space.
// It returns an error wrapping [ErrInvalidColorSpace] if no conversion
// context can be built from sRGB to dst; no partially constructed
// transformer is ever returned.
func NewTransformer(dst *ColorSpace) (*Transformer, error) {
	conv, err := NewConverter(SRGB, dst)
	if err != nil {
		return nil, err
	}
	Logger().Debug("transformer created", "destination", dst.Name)
	return &Transformer{dst: dst, conv: conv}, nil
}

// Destination returns the destination color space.
func (tr *Transformer) Destination() *ColorSpace { return tr.dst }

// ApplyColor converts a single color from sRGB to the destination space.
func (tr *Transformer) ApplyColor(c RGBA) RGBA {
	return tr.conv.Convert(c)
}

// ApplyColors converts a batch of colors from sRGB to the destination
// space, returning a new slice of the same length.
func (tr *Transformer) ApplyColors(colors []RGBA) []RGBA {
	return tr.conv.ConvertSlice(colors)
}

// ApplyPacked converts a single packed 0xAARRGGBB color.
func (tr *Transformer) ApplyPacked(p Packed) Packed {
	return tr.conv.ConvertPacked(p)
}

// ApplyPackedSlice converts a batch of packed colors, returning a new
// slice of the same length.
func (tr *Transformer) ApplyPackedSlice(colors []Packed) []Packed {
	return tr.conv.ConvertPackedSlice(colors)
}

// ApplyImage returns the image re-expressed in the destination space,
// delegating to the image's own conversion capability. The source image
// is never mutated. Returns nil for a nil image or when the image's own
// space tag cannot yield a conversion context.
func (tr *Transformer) ApplyImage(img *Image) *Image {
	if img == nil {
		return nil
	}
	out, err := img.ConvertColorSpace(tr.dst)
	if err != nil {
		Logger().Warn("image conversion failed", "err", err)
		return nil
	}
	return out
}

// ApplyPixmap promotes the pixmap to a zero-copy image view and converts
// it. The intermediate view shares the pixmap's pixels and never escapes
// this call: the returned image always owns an independent buffer.
// Returns nil for an invalid pixmap.
func (tr *Transformer) ApplyPixmap(pm *Pixmap) *Image {
	img := ImageFromPixmap(pm)
	if img == nil {
		return nil
	}
	return tr.ApplyImage(img)
}

// ApplyBrush returns a brush equivalent to b with every color
// re-expressed in the destination space. The brush's kind, geometry,
// tile modes, blend modes, and local transform are preserved.
//
// Dispatch is by capability, not by concrete type, and the first
// matching capability wins: solid color, image-backed, two-brush blend
// (converted recursively), gradient. A brush answering no query, such
// as [CustomBrush], is returned as-is, aliasing the original; this is a
// lossy fallback, not an error.
func (tr *Transformer) ApplyBrush(b Brush) Brush {
	return tr.applyBrush(b, 0)
}

func (tr *Transformer) applyBrush(b Brush, depth int) Brush {
	if b == nil {
		return nil
	}
	if depth >= maxBrushDepth {
		Logger().Warn("brush tree exceeds depth limit, passing through", "depth", depth)
		return b
	}

	if s, ok := b.(solidColorer); ok {
		if c, ok := s.solidColor(); ok {
			return Solid(tr.ApplyColor(c)).WithTransform(b.LocalTransform())
		}
	}

	if is, ok := b.(imageSourcer); ok {
		img, tileX, tileY := is.imageSource()
		if converted := tr.ApplyImage(img); converted != nil {
			return NewImageBrush(converted, tileX, tileY).
				WithTransform(b.LocalTransform())
		}
		// Unconvertible image: fall through to the pass-through path.
	}

	if bo, ok := b.(blendOperands); ok {
		a, op, mode := bo.blendOperands()
		convA := tr.applyBrush(a, depth+1)
		convB := tr.applyBrush(op, depth+1)
		if convA != nil && convB != nil {
			return NewBlendBrush(convA, convB, mode).
				WithTransform(b.LocalTransform())
		}
		// Do not rebuild a partially converted composite.
	}

	if gr, ok := b.(gradienter); ok {
		return tr.applyGradient(b, gr.gradientData())
	}

	Logger().Debug("brush of unrecognized kind passed through unconverted")
	return b
}

// applyGradient rebuilds a gradient brush of the same kind with converted
// stop colors. Offsets, geometry, extend mode, and the local transform
// are preserved. Stop colors are converted as one batch.
func (tr *Transformer) applyGradient(orig Brush, data GradientData) Brush {
	colors := make([]RGBA, len(data.Stops))
	for i, s := range data.Stops {
		colors[i] = s.Color
	}
	converted := tr.ApplyColors(colors)

	stops := make([]ColorStop, len(data.Stops))
	for i, s := range data.Stops {
		stops[i] = ColorStop{Offset: s.Offset, Color: converted[i]}
	}

	local := orig.LocalTransform()

	switch data.Kind {
	case GradientLinear:
		g := NewLinearGradientBrush(
			data.Points[0].X, data.Points[0].Y,
			data.Points[1].X, data.Points[1].Y)
		g.Stops = stops
		return g.SetExtend(data.Extend).WithTransform(local)

	case GradientRadial:
		g := NewRadialGradientBrush(
			data.Points[0].X, data.Points[0].Y, data.Radii[1])
		g.Stops = stops
		return g.SetExtend(data.Extend).WithTransform(local)

	case GradientSweep:
		g := NewSweepGradientBrush(
			data.Points[0].X, data.Points[0].Y, data.Angles[0])
		g.SetEndAngle(data.Angles[1])
		g.Stops = stops
		return g.SetExtend(data.Extend).WithTransform(local)

	case GradientConical:
		g := NewConicalGradientBrush(
			data.Points[0].X, data.Points[0].Y, data.Radii[0],
			data.Points[1].X, data.Points[1].Y, data.Radii[1])
		g.Stops = stops
		return g.SetExtend(data.Extend).WithTransform(local)

	default:
		// The solid-color capability filters degenerate gradients out
		// before this point; a brush reporting one here has inconsistent
		// introspection data.
		panic("tint: cannot reconstruct gradient of kind " + data.Kind.String())
	}
}

// ApplyPaint returns a copy of the paint with every reachable color
// re-expressed in the destination space. The input paint is never
// mutated. Stroke and fill parameters are copied unchanged.
//
// The base color is skipped when all its color channels are zero: black
// encodes identically in every RGB space, so the skip does not change
// observable output. A [BlendFilter] is rebuilt around its converted
// color; other filter kinds are not introspectable and stay as they are.
// An attached effect stack produces its own converted copy, using this
// transformer for its internal colors.
func (tr *Transformer) ApplyPaint(src *Paint) *Paint {
	dst := src.Clone()

	if !src.Color.IsBlack() {
		dst.Color = tr.ApplyColor(src.Color)
	}

	if src.Brush != nil {
		dst.Brush = tr.ApplyBrush(src.Brush)
	}

	if src.Filter != nil {
		if bc, ok := src.Filter.(blendColorer); ok {
			c, mode := bc.blendColor()
			dst.Filter = NewBlendFilter(tr.ApplyColor(c), mode)
		}
	}

	if src.Effect != nil {
		dst.Effect = src.Effect.WithColorSpace(tr)
	}

	return dst
}
