// Package tint converts drawing attributes between color spaces.
//
// # Overview
//
// tint re-expresses paints, brushes, gradients, and images authored in the
// canonical sRGB reference space into an arbitrary destination color space.
// It is designed as a companion library for the GoGPU ecosystem: rendering
// surfaces may be tagged with a color space other than sRGB, and every
// color-bearing object reachable from a paint must be converted before it
// can be composited correctly onto such a surface.
//
// # Quick Start
//
//	import "github.com/gogpu/tint"
//
//	// Create a transformer for a Display P3 surface.
//	tr, err := tint.NewTransformer(tint.DisplayP3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Convert a paint; colors inside brushes, gradients, filters, and
//	// effects are re-expressed in Display P3. Geometry, tile modes, blend
//	// modes, and local transforms are preserved unchanged.
//	p3Paint := tr.ApplyPaint(srgbPaint)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Transformer, Converter, ColorSpace, Brush, Paint, Image
//   - Internal: colormath (primaries, chromatic adaptation, transfer curves)
//
// A Transformer is immutable after construction and may be shared between
// goroutines for independent Apply calls. Brushes of unknown kind pass
// through unconverted; conversion never fails after a Transformer has been
// built.
//
// # Color Convention
//
// All conversions use unpremultiplied alpha. Packed colors use the
// 0xAARRGGBB layout throughout.
package tint

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
