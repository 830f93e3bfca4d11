package tint

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/icc"

	"github.com/gogpu/tint/internal/colormath"
)

// Chromaticity is a CIE xy chromaticity coordinate.
type Chromaticity struct {
	X, Y float64
}

// TransferKind identifies the shape of a transfer curve.
type TransferKind uint8

const (
	// TransferLinear is the identity curve (no gamma encoding).
	TransferLinear TransferKind = iota
	// TransferSRGB is the piecewise sRGB curve (IEC 61966-2-1).
	TransferSRGB
	// TransferGamma is a pure power curve; the exponent is given by
	// TransferCurve.Gamma.
	TransferGamma
)

// TransferCurve describes how a color space encodes linear light.
type TransferCurve struct {
	Kind  TransferKind
	Gamma float64
}

// ColorSpace describes an RGB color space by its primaries, white point,
// and transfer curve. A ColorSpace is immutable after construction and is
// shared by reference; all predefined spaces are package-level variables.
type ColorSpace struct {
	// Name identifies the space in log output and error messages.
	Name string

	// Red, Green, Blue are the xy chromaticities of the primaries.
	Red, Green, Blue Chromaticity

	// White is the xy chromaticity of the white point.
	White Chromaticity

	// Transfer is the transfer curve used to encode linear light.
	Transfer TransferCurve
}

// Predefined color spaces. SRGB is the canonical reference space: all
// drawing attributes are assumed to be authored in it.
var (
	// SRGB is the standard sRGB color space (IEC 61966-2-1, D65).
	SRGB = &ColorSpace{
		Name:     "sRGB",
		Red:      Chromaticity{0.640, 0.330},
		Green:    Chromaticity{0.300, 0.600},
		Blue:     Chromaticity{0.150, 0.060},
		White:    Chromaticity{0.3127, 0.3290},
		Transfer: TransferCurve{Kind: TransferSRGB},
	}

	// LinearSRGB shares the sRGB primaries with a linear transfer curve.
	LinearSRGB = &ColorSpace{
		Name:     "Linear sRGB",
		Red:      Chromaticity{0.640, 0.330},
		Green:    Chromaticity{0.300, 0.600},
		Blue:     Chromaticity{0.150, 0.060},
		White:    Chromaticity{0.3127, 0.3290},
		Transfer: TransferCurve{Kind: TransferLinear},
	}

	// DisplayP3 is the Display P3 color space (DCI-P3 primaries, D65
	// white point, sRGB transfer curve).
	DisplayP3 = &ColorSpace{
		Name:     "Display P3",
		Red:      Chromaticity{0.680, 0.320},
		Green:    Chromaticity{0.265, 0.690},
		Blue:     Chromaticity{0.150, 0.060},
		White:    Chromaticity{0.3127, 0.3290},
		Transfer: TransferCurve{Kind: TransferSRGB},
	}

	// AdobeRGB is the Adobe RGB (1998) color space.
	AdobeRGB = &ColorSpace{
		Name:     "Adobe RGB (1998)",
		Red:      Chromaticity{0.640, 0.330},
		Green:    Chromaticity{0.210, 0.710},
		Blue:     Chromaticity{0.150, 0.060},
		White:    Chromaticity{0.3127, 0.3290},
		Transfer: TransferCurve{Kind: TransferGamma, Gamma: 563.0 / 256.0},
	}

	// Rec2020 is the ITU-R BT.2020 color space with a pure 2.4 gamma
	// approximation of its transfer curve.
	Rec2020 = &ColorSpace{
		Name:     "Rec. 2020",
		Red:      Chromaticity{0.708, 0.292},
		Green:    Chromaticity{0.170, 0.797},
		Blue:     Chromaticity{0.131, 0.046},
		White:    Chromaticity{0.3127, 0.3290},
		Transfer: TransferCurve{Kind: TransferGamma, Gamma: 2.4},
	}
)

// ErrInvalidColorSpace is returned when a color space description cannot
// yield a conversion context (degenerate primaries, malformed transfer
// curve, or an unusable ICC profile).
var ErrInvalidColorSpace = errors.New("tint: invalid color space")

// Equal reports whether two color spaces describe the same space.
// Spaces are compared by value; two distinct descriptions with the same
// primaries, white point, and transfer curve are equal.
func (cs *ColorSpace) Equal(other *ColorSpace) bool {
	if cs == other {
		return true
	}
	if cs == nil || other == nil {
		return false
	}
	return cs.Red == other.Red && cs.Green == other.Green &&
		cs.Blue == other.Blue && cs.White == other.White &&
		cs.Transfer == other.Transfer
}

// curve maps the public transfer description to the internal evaluator.
func (cs *ColorSpace) curve() colormath.Curve {
	return colormath.Curve{
		Kind:  colormath.CurveKind(cs.Transfer.Kind),
		Gamma: float32(cs.Transfer.Gamma),
	}
}

// toXYZ derives the linear-RGB-to-XYZ matrix for the space. The second
// result is false for degenerate primaries.
func (cs *ColorSpace) toXYZ() (colormath.Mat3, bool) {
	return colormath.RGBToXYZ(
		float32(cs.Red.X), float32(cs.Red.Y),
		float32(cs.Green.X), float32(cs.Green.Y),
		float32(cs.Blue.X), float32(cs.Blue.Y),
		float32(cs.White.X), float32(cs.White.Y),
	)
}

// whiteXYZ returns the white point as an XYZ tristimulus value.
func (cs *ColorSpace) whiteXYZ() (colormath.Vec3, bool) {
	return colormath.XYFromChromaticity(float32(cs.White.X), float32(cs.White.Y))
}

// FromICC builds a ColorSpace from an ICC profile. Only RGB profiles are
// supported. The primaries and white point are derived by probing the
// profile's device-to-PCS transform along the device axes; the transfer
// curve is estimated as a pure power curve from the mid-gray response.
//
// The derivation loses LUT detail for non-matrix profiles, which is
// acceptable for tagging drawing attributes: per-pixel fidelity is the
// job of the profile itself, not of this description.
func FromICC(profile []byte) (*ColorSpace, error) {
	p, err := icc.Decode(profile)
	if err != nil {
		return nil, fmt.Errorf("tint: decoding ICC profile: %w", err)
	}
	if p.ColorSpace.NumComponents() != 3 {
		return nil, fmt.Errorf("tint: ICC profile has %d components, need 3: %w",
			p.ColorSpace.NumComponents(), ErrInvalidColorSpace)
	}

	tr, err := icc.NewTransform(p, icc.RelativeColorimetric)
	if err != nil {
		return nil, fmt.Errorf("tint: building ICC transform: %w", err)
	}

	red, err := probeChromaticity(tr, 1, 0, 0)
	if err != nil {
		return nil, err
	}
	green, err := probeChromaticity(tr, 0, 1, 0)
	if err != nil {
		return nil, err
	}
	blue, err := probeChromaticity(tr, 0, 0, 1)
	if err != nil {
		return nil, err
	}
	white, err := probeChromaticity(tr, 1, 1, 1)
	if err != nil {
		return nil, err
	}

	cs := &ColorSpace{
		Name:     "ICC",
		Red:      red,
		Green:    green,
		Blue:     blue,
		White:    white,
		Transfer: estimateTransfer(tr),
	}
	Logger().Debug("color space from ICC profile",
		"gamma", cs.Transfer.Gamma, "white", cs.White)
	return cs, nil
}

// probeChromaticity converts a device color to PCS XYZ and projects it to
// an xy chromaticity.
func probeChromaticity(tr *icc.Transform, r, g, b float64) (Chromaticity, error) {
	x, y, z := tr.ToXYZ([]float64{r, g, b}, &icc.Workspace{})
	sum := x + y + z
	if sum <= 0 {
		return Chromaticity{}, fmt.Errorf("tint: ICC profile maps (%g,%g,%g) to a dark axis: %w",
			r, g, b, ErrInvalidColorSpace)
	}
	return Chromaticity{X: x / sum, Y: y / sum}, nil
}

// estimateTransfer fits a pure power curve to the profile's mid-gray
// luminance response.
func estimateTransfer(tr *icc.Transform) TransferCurve {
	ws := &icc.Workspace{}
	_, yw, _ := tr.ToXYZ([]float64{1, 1, 1}, ws)
	_, ym, _ := tr.ToXYZ([]float64{0.5, 0.5, 0.5}, ws)
	if yw <= 0 || ym <= 0 {
		return TransferCurve{Kind: TransferLinear}
	}
	gamma := math.Log(ym/yw) / math.Log(0.5)
	if math.Abs(gamma-1) < 0.05 {
		return TransferCurve{Kind: TransferLinear}
	}
	return TransferCurve{Kind: TransferGamma, Gamma: gamma}
}
