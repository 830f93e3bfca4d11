package tint

import "testing"

func TestNewPaintDefaults(t *testing.T) {
	p := NewPaint()
	if p.Color != Black {
		t.Errorf("Color = %+v, want black", p.Color)
	}
	if p.Brush != nil || p.Filter != nil || p.Effect != nil {
		t.Error("new paint has non-nil brush, filter, or effect")
	}
	if p.LineWidth != 1 {
		t.Errorf("LineWidth = %v, want 1", p.LineWidth)
	}
	if p.LineCap != LineCapButt || p.LineJoin != LineJoinMiter {
		t.Errorf("caps/joins = %v/%v", p.LineCap, p.LineJoin)
	}
	if p.MiterLimit != 10 {
		t.Errorf("MiterLimit = %v, want 10", p.MiterLimit)
	}
	if p.FillRule != FillRuleNonZero {
		t.Errorf("FillRule = %v", p.FillRule)
	}
	if !p.Antialias {
		t.Error("Antialias = false, want true")
	}
}

func TestPaintClone(t *testing.T) {
	p := NewPaint()
	p.Color = Red
	p.SetBrush(Solid(Blue))
	p.LineWidth = 3

	c := p.Clone()
	if c == p {
		t.Fatal("Clone() returned its receiver")
	}
	if c.Color != Red || c.LineWidth != 3 {
		t.Errorf("clone fields differ: %+v", c)
	}
	// Brush is shared, not deep-copied.
	if c.Brush != p.Brush {
		t.Error("Clone() did not share the brush")
	}

	c.Color = Green
	if p.Color != Red {
		t.Error("mutating the clone changed the original")
	}
}

func TestPaintColorAt(t *testing.T) {
	p := NewPaint()
	p.Color = Red

	// No brush: the base color everywhere.
	if got := p.ColorAt(10, 20); got != Red {
		t.Errorf("ColorAt() = %+v, want base color", got)
	}

	// A brush overrides the base color.
	p.SetBrush(NewLinearGradientBrush(0, 0, 10, 0).
		AddColorStop(0, Black).
		AddColorStop(1, White))
	if got := p.ColorAt(10, 0); !colorsEqual(got, White, colorEpsilon) {
		t.Errorf("ColorAt(10,0) = %+v, want white", got)
	}

	// A filter applies after the brush.
	p.Filter = NewSaturationFilter(0)
	got := p.ColorAt(10, 0)
	if !colorsEqual(got, White, colorEpsilon) {
		t.Errorf("grayscale of white = %+v", got)
	}
	p.SetBrush(Solid(Red))
	got = p.ColorAt(0, 0)
	if got.R == 1 || got.R != got.G || got.G != got.B {
		t.Errorf("filtered red not grayscale: %+v", got)
	}
}
