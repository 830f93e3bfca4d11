package tint

import "testing"

func TestSolidBrushColorAt(t *testing.T) {
	b := Solid(Red)
	positions := [][2]float64{{0, 0}, {100, -50}, {1e6, 1e6}}
	for _, pos := range positions {
		if got := b.ColorAt(pos[0], pos[1]); got != Red {
			t.Errorf("ColorAt(%v, %v) = %+v, want red", pos[0], pos[1], got)
		}
	}
}

func TestSolidBrushCapability(t *testing.T) {
	b := Solid(Magenta)
	c, ok := b.solidColor()
	if !ok || c != Magenta {
		t.Errorf("solidColor() = %+v, %v", c, ok)
	}
}

func TestSolidBrushWithAlpha(t *testing.T) {
	b := Solid(Red).WithAlpha(0.5)
	if b.Color.A != 0.5 || b.Color.R != 1 {
		t.Errorf("WithAlpha(0.5) = %+v", b.Color)
	}
}

func TestCustomBrushColorAt(t *testing.T) {
	checker := NewCustomBrush(func(x, y float64) RGBA {
		if (int(x/10)+int(y/10))%2 == 0 {
			return Black
		}
		return White
	})
	if got := checker.ColorAt(5, 5); got != Black {
		t.Errorf("ColorAt(5, 5) = %+v, want black", got)
	}
	if got := checker.ColorAt(15, 5); got != White {
		t.Errorf("ColorAt(15, 5) = %+v, want white", got)
	}

	nilFunc := NewCustomBrush(nil)
	if got := nilFunc.ColorAt(0, 0); got != Transparent {
		t.Errorf("nil func ColorAt = %+v, want transparent", got)
	}
}

func TestImageBrushTiling(t *testing.T) {
	pm := NewPixmap(2, 1)
	pm.SetPixel(0, 0, Red)
	pm.SetPixel(1, 0, Blue)
	img := ImageFromPixmap(pm)

	tests := []struct {
		name  string
		tileX ExtendMode
		x     float64
		want  RGBA
	}{
		{"pad left", ExtendPad, -5, Red},
		{"pad right", ExtendPad, 7, Blue},
		{"repeat", ExtendRepeat, 2, Red},
		{"repeat 3", ExtendRepeat, 3, Blue},
		{"reflect", ExtendReflect, 2, Blue},
		{"reflect 3", ExtendReflect, 3, Red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewImageBrush(img, tt.tileX, ExtendPad)
			got := b.ColorAt(tt.x, 0)
			if !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("ColorAt(%v, 0) = %+v, want %+v", tt.x, got, tt.want)
			}
		})
	}
}

func TestImageBrushCapability(t *testing.T) {
	img := ImageFromPixmap(NewPixmap(1, 1))
	b := NewImageBrush(img, ExtendRepeat, ExtendReflect)
	src, tx, ty := b.imageSource()
	if src != img || tx != ExtendRepeat || ty != ExtendReflect {
		t.Errorf("imageSource() = %v, %v, %v", src, tx, ty)
	}
}

func TestNewImageBrushNil(t *testing.T) {
	if b := NewImageBrush(nil, ExtendPad, ExtendPad); b != nil {
		t.Errorf("NewImageBrush(nil) = %v, want nil", b)
	}
}

func TestBlendBrushColorAt(t *testing.T) {
	b := NewBlendBrush(Solid(Red), Solid(RGBA2(0, 0, 1, 0.5)), BlendSourceOver)
	got := b.ColorAt(0, 0)
	// Half-transparent blue over red.
	want := RGBA{R: 0.5, G: 0, B: 0.5, A: 1}
	if !colorsEqual(got, want, colorEpsilon) {
		t.Errorf("ColorAt = %+v, want %+v", got, want)
	}
}

func TestBlendBrushCapability(t *testing.T) {
	a := Solid(Red)
	bb := Solid(Blue)
	b := NewBlendBrush(a, bb, BlendMultiply)
	gotA, gotB, mode := b.blendOperands()
	if gotA != Brush(a) || gotB != Brush(bb) || mode != BlendMultiply {
		t.Errorf("blendOperands() = %v, %v, %v", gotA, gotB, mode)
	}
}

func TestNewBlendBrushNilOperand(t *testing.T) {
	if b := NewBlendBrush(nil, Solid(Red), BlendSourceOver); b != nil {
		t.Errorf("NewBlendBrush(nil, _) = %v, want nil", b)
	}
	if b := NewBlendBrush(Solid(Red), nil, BlendSourceOver); b != nil {
		t.Errorf("NewBlendBrush(_, nil) = %v, want nil", b)
	}
}

func TestBrushDefaultTransforms(t *testing.T) {
	brushes := []Brush{
		Solid(Red),
		NewCustomBrush(nil),
		NewImageBrush(ImageFromPixmap(NewPixmap(1, 1)), ExtendPad, ExtendPad),
		NewBlendBrush(Solid(Red), Solid(Blue), BlendSourceOver),
		NewLinearGradientBrush(0, 0, 1, 0),
		NewRadialGradientBrush(0, 0, 1),
		NewSweepGradientBrush(0, 0, 0),
		NewConicalGradientBrush(0, 0, 0, 1, 0, 1),
	}
	for _, b := range brushes {
		if !b.LocalTransform().IsIdentity() {
			t.Errorf("%T default LocalTransform() is not identity", b)
		}
	}
}
