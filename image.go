package tint

import (
	"github.com/anthonynsimon/bild/parallel"
)

// Image is a pixmap tagged with the color space its pixel values are
// expressed in. The pixel data is unpremultiplied RGBA.
//
// Images are immutable by convention: conversion returns a new Image with
// its own pixel buffer and never writes to the source.
type Image struct {
	pixmap *Pixmap
	space  *ColorSpace
}

// NewImage creates an image with the given dimensions, tagged with space.
// A nil space means sRGB.
func NewImage(width, height int, space *ColorSpace) *Image {
	if space == nil {
		space = SRGB
	}
	return &Image{pixmap: NewPixmap(width, height), space: space}
}

// ImageFromPixmap promotes a pixmap to an image without copying pixels.
// The pixmap's values are assumed to be sRGB, the reference space for
// untagged raster data. The returned image shares the pixmap's buffer:
// callers who need an independent image must convert or copy it.
//
// Returns nil for an invalid pixmap.
func ImageFromPixmap(pm *Pixmap) *Image {
	if !pm.Valid() {
		return nil
	}
	return &Image{pixmap: pm, space: SRGB}
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int { return img.pixmap.width }

// Height returns the height of the image in pixels.
func (img *Image) Height() int { return img.pixmap.height }

// Space returns the color space the pixel values are expressed in.
func (img *Image) Space() *ColorSpace { return img.space }

// Pixmap returns the underlying pixel buffer.
func (img *Image) Pixmap() *Pixmap { return img.pixmap }

// PixelAt returns the unpremultiplied color of a single pixel, expressed
// in the image's color space.
func (img *Image) PixelAt(x, y int) RGBA {
	return img.pixmap.GetPixel(x, y)
}

// ConvertColorSpace returns a copy of the image with every pixel
// re-expressed in dst and the tag updated. The source image is never
// mutated. If the image is already tagged with an equal space, the
// result is a fresh copy with no pixel change.
//
// Returns an error wrapping [ErrInvalidColorSpace] if no conversion
// context can be built for the space pair.
func (img *Image) ConvertColorSpace(dst *ColorSpace) (*Image, error) {
	out := &Image{
		pixmap: NewPixmap(img.pixmap.width, img.pixmap.height),
		space:  dst,
	}
	copy(out.pixmap.data, img.pixmap.data)

	if img.space.Equal(dst) {
		return out, nil
	}

	cv, err := NewConverter(img.space, dst)
	if err != nil {
		return nil, err
	}

	// Rows are independent; convert them in parallel.
	stride := img.pixmap.width * 4
	parallel.Line(img.pixmap.height, func(start, end int) {
		cv.convertPixels(out.pixmap.data[start*stride : end*stride])
	})

	Logger().Debug("image converted",
		"width", img.pixmap.width, "height", img.pixmap.height,
		"from", img.space.Name, "to", dst.Name)
	return out, nil
}
