package tint

import "math"

// ImageBrush samples colors from an image, with an independent tile mode
// per axis and a local transform mapping brush space to image space.
//
// ImageBrush is introspectable: color space conversion rebuilds it around
// a converted image, keeping tile modes and transform unchanged.
type ImageBrush struct {
	// Image is the source image.
	Image *Image

	// TileX and TileY control how coordinates outside the image extent
	// are mapped back in, per axis.
	TileX, TileY ExtendMode

	// Transform is the local coordinate transform. Sampling applies its
	// inverse to go from brush space to image space.
	Transform Matrix
}

// NewImageBrush creates a brush that samples img with the given tile
// modes. Returns nil for a nil image.
func NewImageBrush(img *Image, tileX, tileY ExtendMode) *ImageBrush {
	if img == nil {
		return nil
	}
	return &ImageBrush{
		Image:     img,
		TileX:     tileX,
		TileY:     tileY,
		Transform: Identity(),
	}
}

// WithTransform returns a new ImageBrush with the given local transform.
func (b *ImageBrush) WithTransform(m Matrix) *ImageBrush {
	return &ImageBrush{
		Image:     b.Image,
		TileX:     b.TileX,
		TileY:     b.TileY,
		Transform: m,
	}
}

// brushMarker implements the sealed Brush interface.
func (*ImageBrush) brushMarker() {}

// LocalTransform implements Brush.
func (b *ImageBrush) LocalTransform() Matrix {
	if b.Transform == (Matrix{}) {
		return Identity()
	}
	return b.Transform
}

// imageSource implements the image-backed capability.
func (b *ImageBrush) imageSource() (*Image, ExtendMode, ExtendMode) {
	return b.Image, b.TileX, b.TileY
}

// ColorAt implements Brush. The point is taken through the inverse local
// transform into image space and sampled with nearest-neighbor lookup
// after per-axis tiling.
func (b *ImageBrush) ColorAt(x, y float64) RGBA {
	w := b.Image.Width()
	h := b.Image.Height()
	if w == 0 || h == 0 {
		return Transparent
	}

	p := b.LocalTransform().Invert().TransformPoint(Pt(x, y))

	ix := tileCoord(p.X, w, b.TileX)
	iy := tileCoord(p.Y, h, b.TileY)
	return b.Image.PixelAt(ix, iy)
}

// tileCoord maps a continuous coordinate into [0, n) according to mode.
func tileCoord(v float64, n int, mode ExtendMode) int {
	fn := float64(n)
	switch mode {
	case ExtendRepeat:
		v = math.Mod(v, fn)
		if v < 0 {
			v += fn
		}
	case ExtendReflect:
		period := 2 * fn
		v = math.Mod(v, period)
		if v < 0 {
			v += period
		}
		if v >= fn {
			v = period - v - 1
		}
	default: // ExtendPad
		if v < 0 {
			v = 0
		}
		if v > fn-1 {
			v = fn - 1
		}
	}
	i := int(v)
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return i
}
