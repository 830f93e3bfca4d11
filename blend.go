package tint

// BlendMode defines how a source color is combined with a destination
// color. Blend modes are preserved verbatim when attributes are converted
// between color spaces; they never participate in the conversion itself.
type BlendMode uint8

const (
	// BlendSourceOver performs standard alpha blending (source over
	// destination). This is the default.
	BlendSourceOver BlendMode = iota

	// BlendSource replaces the destination with the source.
	BlendSource

	// BlendDestinationOver draws destination over source.
	BlendDestinationOver

	// BlendDestinationIn keeps destination where source is opaque.
	BlendDestinationIn

	// BlendDestinationOut keeps destination where source is transparent.
	BlendDestinationOut

	// BlendMultiply multiplies source and destination colors.
	// Result is always darker or equal.
	BlendMultiply

	// BlendScreen performs inverse multiply for lighter results.
	// Formula: 1 - (1-dst) * (1-src)
	BlendScreen

	// BlendPlus adds source and destination, clamped to 1.
	BlendPlus
)

const unknownBlendMode = "Unknown"

// String returns a string representation of the blend mode.
func (b BlendMode) String() string {
	switch b {
	case BlendSourceOver:
		return "SourceOver"
	case BlendSource:
		return "Source"
	case BlendDestinationOver:
		return "DestinationOver"
	case BlendDestinationIn:
		return "DestinationIn"
	case BlendDestinationOut:
		return "DestinationOut"
	case BlendMultiply:
		return "Multiply"
	case BlendScreen:
		return "Screen"
	case BlendPlus:
		return "Plus"
	default:
		return unknownBlendMode
	}
}

// Blend combines two unpremultiplied colors using the specified mode.
// Unknown modes fall back to source-over.
func Blend(src, dst RGBA, mode BlendMode) RGBA {
	switch mode {
	case BlendSource:
		return src
	case BlendDestinationOver:
		return sourceOver(dst, src)
	case BlendDestinationIn:
		return RGBA{R: dst.R, G: dst.G, B: dst.B, A: dst.A * src.A}
	case BlendDestinationOut:
		return RGBA{R: dst.R, G: dst.G, B: dst.B, A: dst.A * (1 - src.A)}
	case BlendMultiply:
		return separable(src, dst, func(s, d float64) float64 { return s * d })
	case BlendScreen:
		return separable(src, dst, func(s, d float64) float64 { return 1 - (1-s)*(1-d) })
	case BlendPlus:
		return RGBA{
			R: clamp01(src.R + dst.R),
			G: clamp01(src.G + dst.G),
			B: clamp01(src.B + dst.B),
			A: clamp01(src.A + dst.A),
		}
	default:
		return sourceOver(src, dst)
	}
}

// sourceOver blends source over destination using alpha compositing.
func sourceOver(src, dst RGBA) RGBA {
	srcA := src.A
	dstA := dst.A
	invSrcA := 1.0 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return RGBA{R: 0, G: 0, B: 0, A: 0}
	}

	return RGBA{
		R: (src.R*srcA + dst.R*dstA*invSrcA) / outA,
		G: (src.G*srcA + dst.G*dstA*invSrcA) / outA,
		B: (src.B*srcA + dst.B*dstA*invSrcA) / outA,
		A: outA,
	}
}

// separable applies a per-channel blend function and composites the
// result using source-over alpha.
func separable(src, dst RGBA, f func(s, d float64) float64) RGBA {
	blended := RGBA{
		R: f(src.R, dst.R),
		G: f(src.G, dst.G),
		B: f(src.B, dst.B),
		A: src.A,
	}
	return sourceOver(blended, dst)
}
