package tint

// Brush represents what to paint with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single solid color
//   - ImageBrush: an image sampled with per-axis tiling (see brush_image.go)
//   - BlendBrush: two brushes combined with a blend mode (see brush_blend.go)
//   - LinearGradientBrush, RadialGradientBrush, SweepGradientBrush,
//     ConicalGradientBrush: color transitions (see gradient_*.go)
//   - CustomBrush: user-defined color function (see brush_custom.go)
//
// Brushes carry a local coordinate transform that is independent of their
// color content. Color space conversion (see [Transformer.ApplyBrush])
// introspects a brush through capability queries: a brush of a recognized
// kind is rebuilt with converted colors, while CustomBrush and any brush
// whose kind cannot be determined passes through unconverted.
//
// Example usage:
//
//	paint.SetBrush(tint.Solid(tint.Red))
//	paint.SetBrush(tint.SolidHex("#FF5733"))
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// ColorAt returns the color at the given coordinates.
	// For solid brushes, this returns the same color regardless of position.
	// For pattern-based brushes, this samples the pattern at (x, y).
	ColorAt(x, y float64) RGBA

	// LocalTransform returns the brush's local coordinate transform.
	LocalTransform() Matrix
}

// Capability queries. Each recognized brush kind implements exactly one
// of these; conversion dispatches on them in order rather than on
// concrete types, so a kind that answers no query falls through to the
// pass-through path.
type (
	// solidColorer is answered by brushes that resolve to one color.
	solidColorer interface {
		solidColor() (RGBA, bool)
	}

	// imageSourcer is answered by image-backed brushes.
	imageSourcer interface {
		imageSource() (img *Image, tileX, tileY ExtendMode)
	}

	// blendOperands is answered by two-brush composites.
	blendOperands interface {
		blendOperands() (a, b Brush, mode BlendMode)
	}

	// gradienter is answered by gradient brushes. The returned data owns
	// its stop slice.
	gradienter interface {
		gradientData() GradientData
	}
)

// SolidBrush is a single-color brush.
// It implements the Brush interface and always returns the same color.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA

	// Transform is the local coordinate transform. It has no effect on
	// sampling a solid color but is preserved across conversion.
	Transform Matrix
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// LocalTransform implements Brush.
func (b SolidBrush) LocalTransform() Matrix {
	if b.Transform == (Matrix{}) {
		return Identity()
	}
	return b.Transform
}

// solidColor implements the solid-color capability.
func (b SolidBrush) solidColor() (RGBA, bool) {
	return b.Color, true
}

// Solid creates a SolidBrush from an RGBA color.
//
// Example:
//
//	brush := tint.Solid(tint.Red)
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c, Transform: Identity()}
}

// SolidRGB creates a SolidBrush from RGB components (0-1 range).
// Alpha is set to 1.0 (fully opaque).
func SolidRGB(r, g, b float64) SolidBrush {
	return SolidBrush{Color: RGB(r, g, b), Transform: Identity()}
}

// SolidRGBA creates a SolidBrush from RGBA components (0-1 range).
func SolidRGBA(r, g, b, a float64) SolidBrush {
	return SolidBrush{Color: RGBA2(r, g, b, a), Transform: Identity()}
}

// SolidHex creates a SolidBrush from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex), Transform: Identity()}
}

// WithTransform returns a new SolidBrush with the given local transform.
func (b SolidBrush) WithTransform(m Matrix) SolidBrush {
	return SolidBrush{Color: b.Color, Transform: m}
}

// WithAlpha returns a new SolidBrush with the specified alpha value.
// The RGB components are preserved.
func (b SolidBrush) WithAlpha(alpha float64) SolidBrush {
	return SolidBrush{
		Color: RGBA{
			R: b.Color.R,
			G: b.Color.G,
			B: b.Color.B,
			A: alpha,
		},
		Transform: b.Transform,
	}
}

// Lerp performs linear interpolation between two solid brushes.
// Returns a new SolidBrush with the interpolated color.
func (b SolidBrush) Lerp(other SolidBrush, t float64) SolidBrush {
	return SolidBrush{Color: b.Color.Lerp(other.Color, t), Transform: b.Transform}
}
