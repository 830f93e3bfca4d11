package tint

// Effect describes a stack of drawing passes applied around a single
// draw call, such as a drop shadow drawn beneath the main pass. Effects
// can be color-bearing, so they participate in color space conversion:
// rather than being introspected from the outside, an effect produces
// its own converted copy given a transformer.
type Effect interface {
	// effectMarker is an unexported method that seals this interface.
	effectMarker()

	// WithColorSpace returns a copy of the effect with every internal
	// color converted by tr. The receiver is not modified. Effects whose
	// passes carry paints convert them through [Transformer.ApplyPaint];
	// flat colors go through [Transformer.ApplyColor].
	WithColorSpace(tr *Transformer) Effect
}

// ShadowEffect draws an offset, blurred, colorized copy of the shape
// beneath the main draw pass.
type ShadowEffect struct {
	// OffsetX is the horizontal shadow offset in pixels.
	OffsetX float64

	// OffsetY is the vertical shadow offset in pixels.
	OffsetY float64

	// BlurRadius is the shadow blur radius in pixels.
	BlurRadius float64

	// Color is the shadow color (typically black with partial alpha).
	Color RGBA
}

// NewShadowEffect creates a drop shadow effect.
// Common usage: NewShadowEffect(3, 3, 5, tint.RGBA2(0, 0, 0, 0.5))
func NewShadowEffect(offsetX, offsetY, blurRadius float64, color RGBA) *ShadowEffect {
	return &ShadowEffect{
		OffsetX:    offsetX,
		OffsetY:    offsetY,
		BlurRadius: blurRadius,
		Color:      color,
	}
}

// effectMarker implements the sealed Effect interface.
func (*ShadowEffect) effectMarker() {}

// WithColorSpace implements Effect. Geometry is preserved; only the
// shadow color is converted.
func (e *ShadowEffect) WithColorSpace(tr *Transformer) Effect {
	return &ShadowEffect{
		OffsetX:    e.OffsetX,
		OffsetY:    e.OffsetY,
		BlurRadius: e.BlurRadius,
		Color:      tr.ApplyColor(e.Color),
	}
}

// LayerPass is one pass of a [LayerEffect]: an optional paint override
// drawn at an offset before the main draw.
type LayerPass struct {
	// OffsetX, OffsetY displace the pass in pixels.
	OffsetX, OffsetY float64

	// Paint overrides the draw paint for this pass. A nil Paint reuses
	// the original draw's paint unchanged.
	Paint *Paint
}

// LayerEffect draws a sequence of passes around the main draw call, each
// with its own offset and optional paint.
type LayerEffect struct {
	// Passes are drawn in order, before the main pass.
	Passes []LayerPass
}

// NewLayerEffect creates a layer effect from the given passes.
func NewLayerEffect(passes ...LayerPass) *LayerEffect {
	return &LayerEffect{Passes: passes}
}

// effectMarker implements the sealed Effect interface.
func (*LayerEffect) effectMarker() {}

// WithColorSpace implements Effect. Each pass paint is converted through
// the transformer; offsets are preserved.
func (e *LayerEffect) WithColorSpace(tr *Transformer) Effect {
	out := &LayerEffect{Passes: make([]LayerPass, len(e.Passes))}
	for i, pass := range e.Passes {
		out.Passes[i] = LayerPass{
			OffsetX: pass.OffsetX,
			OffsetY: pass.OffsetY,
		}
		if pass.Paint != nil {
			out.Passes[i].Paint = tr.ApplyPaint(pass.Paint)
		}
	}
	return out
}
