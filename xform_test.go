package tint

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// approxColor compares RGBA colors within the shared test epsilon so that
// converted brushes can be diffed structurally.
var approxColor = cmp.Comparer(func(a, b RGBA) bool {
	return colorsEqual(a, b, colorEpsilon)
})

func newP3Transformer(t *testing.T) *Transformer {
	t.Helper()
	tr, err := NewTransformer(DisplayP3)
	if err != nil {
		t.Fatal(err)
	}
	return tr
}

func TestNewTransformerInvalid(t *testing.T) {
	bad := &ColorSpace{
		Name:     "bad",
		Red:      Chromaticity{0.3, 0.3},
		Green:    Chromaticity{0.3, 0.3},
		Blue:     Chromaticity{0.3, 0.3},
		White:    Chromaticity{0.3127, 0.3290},
		Transfer: TransferCurve{Kind: TransferSRGB},
	}
	for _, dst := range []*ColorSpace{nil, bad} {
		tr, err := NewTransformer(dst)
		if err == nil {
			t.Fatal("NewTransformer() succeeded for invalid destination")
		}
		if !errors.Is(err, ErrInvalidColorSpace) {
			t.Errorf("error %v does not wrap ErrInvalidColorSpace", err)
		}
		if tr != nil {
			t.Error("NewTransformer() returned a partial transformer on error")
		}
	}
}

func TestApplyColorMatchesConverter(t *testing.T) {
	tr := newP3Transformer(t)
	cv, err := NewConverter(SRGB, DisplayP3)
	if err != nil {
		t.Fatal(err)
	}
	c := FromPacked(0xFF336699)
	if got, want := tr.ApplyColor(c), cv.Convert(c); got != want {
		t.Errorf("ApplyColor = %+v, converter = %+v", got, want)
	}
	if got, want := tr.ApplyPacked(0xFF336699), cv.ConvertPacked(0xFF336699); got != want {
		t.Errorf("ApplyPacked = %#x, converter = %#x", got, want)
	}
}

func TestApplyBrushNil(t *testing.T) {
	tr := newP3Transformer(t)
	if got := tr.ApplyBrush(nil); got != nil {
		t.Errorf("ApplyBrush(nil) = %v", got)
	}
}

func TestApplyBrushSolid(t *testing.T) {
	tr := newP3Transformer(t)
	local := Translate(3, 4)
	src := Solid(FromPacked(0xFF336699)).WithTransform(local)

	got, ok := tr.ApplyBrush(src).(SolidBrush)
	if !ok {
		t.Fatalf("converted brush is %T, want SolidBrush", tr.ApplyBrush(src))
	}
	if want := tr.ApplyColor(src.Color); got.Color != want {
		t.Errorf("color = %+v, want %+v", got.Color, want)
	}
	if got.LocalTransform() != local {
		t.Errorf("transform = %+v, want %+v", got.LocalTransform(), local)
	}
	// The input brush keeps its sRGB color.
	if src.Color != FromPacked(0xFF336699) {
		t.Error("input brush was modified")
	}
}

func TestApplyBrushGradients(t *testing.T) {
	tr := newP3Transformer(t)
	local := Translate(5, -2)
	stops := []ColorStop{
		{Offset: 0, Color: Red},
		{Offset: 0.5, Color: Green},
		{Offset: 1, Color: Blue},
	}
	addStops := func(add func(float64, RGBA)) {
		for _, s := range stops {
			add(s.Offset, s.Color)
		}
	}
	convStops := make([]ColorStop, len(stops))
	for i, s := range stops {
		convStops[i] = ColorStop{Offset: s.Offset, Color: tr.ApplyColor(s.Color)}
	}

	t.Run("linear", func(t *testing.T) {
		src := NewLinearGradientBrush(0, 0, 100, 50).
			SetExtend(ExtendRepeat).WithTransform(local)
		addStops(func(o float64, c RGBA) { src.AddColorStop(o, c) })

		want := NewLinearGradientBrush(0, 0, 100, 50).
			SetExtend(ExtendRepeat).WithTransform(local)
		want.Stops = convStops

		if diff := cmp.Diff(want, tr.ApplyBrush(src), approxColor); diff != "" {
			t.Errorf("converted gradient mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("radial", func(t *testing.T) {
		src := NewRadialGradientBrush(50, 50, 40).
			SetExtend(ExtendReflect).WithTransform(local)
		addStops(func(o float64, c RGBA) { src.AddColorStop(o, c) })

		want := NewRadialGradientBrush(50, 50, 40).
			SetExtend(ExtendReflect).WithTransform(local)
		want.Stops = convStops

		if diff := cmp.Diff(want, tr.ApplyBrush(src), approxColor); diff != "" {
			t.Errorf("converted gradient mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sweep", func(t *testing.T) {
		src := NewSweepGradientBrush(10, 20, math.Pi/4).
			SetEndAngle(math.Pi).SetExtend(ExtendPad).WithTransform(local)
		addStops(func(o float64, c RGBA) { src.AddColorStop(o, c) })

		want := NewSweepGradientBrush(10, 20, math.Pi/4).
			SetEndAngle(math.Pi).SetExtend(ExtendPad).WithTransform(local)
		want.Stops = convStops

		if diff := cmp.Diff(want, tr.ApplyBrush(src), approxColor); diff != "" {
			t.Errorf("converted gradient mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("conical", func(t *testing.T) {
		src := NewConicalGradientBrush(30, 30, 5, 50, 50, 40).
			SetExtend(ExtendReflect).WithTransform(local)
		addStops(func(o float64, c RGBA) { src.AddColorStop(o, c) })

		want := NewConicalGradientBrush(30, 30, 5, 50, 50, 40).
			SetExtend(ExtendReflect).WithTransform(local)
		want.Stops = convStops

		if diff := cmp.Diff(want, tr.ApplyBrush(src), approxColor); diff != "" {
			t.Errorf("converted gradient mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestApplyBrushGradientKeepsRawOffsets(t *testing.T) {
	// Out-of-range stop offsets are the brush's business, not the
	// converter's: they must survive conversion verbatim.
	tr := newP3Transformer(t)
	src := NewLinearGradientBrush(0, 0, 1, 0).
		AddColorStop(-0.5, Red).
		AddColorStop(1.5, Blue)

	got := tr.ApplyBrush(src).(*LinearGradientBrush)
	if got.Stops[0].Offset != -0.5 || got.Stops[1].Offset != 1.5 {
		t.Errorf("offsets changed: %+v", got.Stops)
	}
}

func TestApplyBrushGradientDoesNotMutateSource(t *testing.T) {
	tr := newP3Transformer(t)
	src := NewConicalGradientBrush(0, 0, 0, 10, 0, 5).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)

	tr.ApplyBrush(src)
	if src.Stops[0].Color != Red || src.Stops[1].Color != Blue {
		t.Error("source gradient stops were modified")
	}
}

func TestApplyBrushCustomPassThrough(t *testing.T) {
	tr := newP3Transformer(t)
	src := NewCustomBrush(func(x, y float64) RGBA { return Red })

	if got := tr.ApplyBrush(src); got != Brush(src) {
		t.Errorf("custom brush not passed through by identity: %T", got)
	}
}

func TestApplyBrushBlendRecursive(t *testing.T) {
	tr := newP3Transformer(t)
	custom := NewCustomBrush(func(x, y float64) RGBA { return Green })
	local := Scale(2, 2)
	src := NewBlendBrush(Solid(Red), custom, BlendMultiply).WithTransform(local)

	got, ok := tr.ApplyBrush(src).(*BlendBrush)
	if !ok {
		t.Fatalf("converted brush is %T, want *BlendBrush", tr.ApplyBrush(src))
	}
	if got == src {
		t.Fatal("composite brush was not rebuilt")
	}
	if got.Mode != BlendMultiply {
		t.Errorf("mode = %v, want %v", got.Mode, BlendMultiply)
	}
	if got.LocalTransform() != local {
		t.Errorf("transform = %+v, want %+v", got.LocalTransform(), local)
	}

	a, ok := got.A.(SolidBrush)
	if !ok {
		t.Fatalf("operand A is %T, want SolidBrush", got.A)
	}
	if want := tr.ApplyColor(Red); !colorsEqual(a.Color, want, colorEpsilon) {
		t.Errorf("operand A color = %+v, want %+v", a.Color, want)
	}
	// The opaque operand keeps its identity inside the rebuilt composite.
	if got.B != Brush(custom) {
		t.Errorf("operand B is %T, want the original custom brush", got.B)
	}
}

func TestApplyBrushDepthLimit(t *testing.T) {
	tr := newP3Transformer(t)

	nodes := make([]Brush, maxBrushDepth+7)
	nodes[0] = NewCustomBrush(func(x, y float64) RGBA { return Red })
	for i := 1; i < len(nodes); i++ {
		nodes[i] = NewBlendBrush(nodes[i-1], Solid(Blue), BlendSourceOver)
	}

	got := tr.ApplyBrush(nodes[len(nodes)-1])
	if got == nil {
		t.Fatal("deep brush tree converted to nil")
	}

	// The node reached at the depth limit passes through unconverted.
	// Descending k levels from the root reaches the node processed at
	// recursion depth k.
	cur := got
	for range maxBrushDepth {
		bb, ok := cur.(*BlendBrush)
		if !ok {
			t.Fatalf("descent hit %T before the depth limit", cur)
		}
		cur = bb.A
	}
	if want := nodes[len(nodes)-1-maxBrushDepth]; cur != want {
		t.Errorf("subtree beyond the depth limit was rebuilt: %T", cur)
	}
}

// inconsistentGradient reports the gradient capability with a kind that
// has no reconstruction path.
type inconsistentGradient struct{}

func (inconsistentGradient) brushMarker()               {}
func (inconsistentGradient) ColorAt(_, _ float64) RGBA  { return Black }
func (inconsistentGradient) LocalTransform() Matrix     { return Identity() }
func (inconsistentGradient) gradientData() GradientData { return GradientData{Kind: GradientNone} }

func TestApplyBrushInconsistentGradientPanics(t *testing.T) {
	tr := newP3Transformer(t)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unreconstructible gradient kind")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "gradient") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	tr.ApplyBrush(inconsistentGradient{})
}

func TestApplyPaint(t *testing.T) {
	tr := newP3Transformer(t)

	src := NewPaint()
	src.Color = FromPacked(0xFF336699)
	src.Brush = Solid(Red)
	src.Filter = NewBlendFilter(Green, BlendMultiply)
	src.Effect = NewShadowEffect(3, 3, 5, RGBA2(1, 0, 0, 0.5))
	src.LineWidth = 2.5
	src.LineCap = LineCapRound
	src.LineJoin = LineJoinBevel
	src.MiterLimit = 4
	src.FillRule = FillRuleEvenOdd
	src.Antialias = false

	got := tr.ApplyPaint(src)
	if got == src {
		t.Fatal("ApplyPaint returned its input")
	}

	if want := tr.ApplyColor(src.Color); got.Color != want {
		t.Errorf("base color = %+v, want %+v", got.Color, want)
	}
	if b, ok := got.Brush.(SolidBrush); !ok {
		t.Errorf("brush is %T, want SolidBrush", got.Brush)
	} else if want := tr.ApplyColor(Red); !colorsEqual(b.Color, want, colorEpsilon) {
		t.Errorf("brush color = %+v, want %+v", b.Color, want)
	}
	if f, ok := got.Filter.(*BlendFilter); !ok {
		t.Errorf("filter is %T, want *BlendFilter", got.Filter)
	} else {
		if want := tr.ApplyColor(Green); !colorsEqual(f.Color, want, colorEpsilon) {
			t.Errorf("filter color = %+v, want %+v", f.Color, want)
		}
		if f.Mode != BlendMultiply {
			t.Errorf("filter mode = %v, want %v", f.Mode, BlendMultiply)
		}
	}
	if e, ok := got.Effect.(*ShadowEffect); !ok {
		t.Errorf("effect is %T, want *ShadowEffect", got.Effect)
	} else {
		if want := tr.ApplyColor(RGBA2(1, 0, 0, 0.5)); !colorsEqual(e.Color, want, colorEpsilon) {
			t.Errorf("shadow color = %+v, want %+v", e.Color, want)
		}
		if e.OffsetX != 3 || e.OffsetY != 3 || e.BlurRadius != 5 {
			t.Errorf("shadow geometry changed: %+v", e)
		}
	}

	if got.LineWidth != 2.5 || got.LineCap != LineCapRound ||
		got.LineJoin != LineJoinBevel || got.MiterLimit != 4 ||
		got.FillRule != FillRuleEvenOdd || got.Antialias != false {
		t.Errorf("stroke/fill parameters changed: %+v", got)
	}

	// The input paint keeps its sRGB colors.
	if src.Color != FromPacked(0xFF336699) {
		t.Error("input paint color was modified")
	}
	if src.Brush.(SolidBrush).Color != Red {
		t.Error("input paint brush was modified")
	}
}

func TestApplyPaintBlackSkipsConversion(t *testing.T) {
	tr := newP3Transformer(t)

	src := NewPaint()
	src.Color = RGBA2(0, 0, 0, 0.5)

	got := tr.ApplyPaint(src)
	if got.Color != src.Color {
		t.Errorf("black base color changed: %+v -> %+v", src.Color, got.Color)
	}
}

func TestApplyPaintMatrixFilterUntouched(t *testing.T) {
	tr := newP3Transformer(t)

	filter := NewSaturationFilter(0.5)
	src := NewPaint()
	src.Filter = filter

	got := tr.ApplyPaint(src)
	if got.Filter != ColorFilter(filter) {
		t.Errorf("matrix filter was rebuilt: %T", got.Filter)
	}
}

func TestApplyPaintLayerEffect(t *testing.T) {
	tr := newP3Transformer(t)

	passPaint := NewPaint()
	passPaint.Color = Red
	src := NewPaint()
	src.Effect = NewLayerEffect(
		LayerPass{OffsetX: 2, OffsetY: 3, Paint: passPaint},
		LayerPass{OffsetX: -1},
	)

	got := tr.ApplyPaint(src)
	le, ok := got.Effect.(*LayerEffect)
	if !ok {
		t.Fatalf("effect is %T, want *LayerEffect", got.Effect)
	}
	if len(le.Passes) != 2 {
		t.Fatalf("pass count = %d, want 2", len(le.Passes))
	}
	if le.Passes[0].OffsetX != 2 || le.Passes[0].OffsetY != 3 {
		t.Errorf("pass offsets changed: %+v", le.Passes[0])
	}
	if le.Passes[0].Paint == passPaint {
		t.Error("pass paint was not copied")
	}
	if want := tr.ApplyColor(Red); !colorsEqual(le.Passes[0].Paint.Color, want, colorEpsilon) {
		t.Errorf("pass color = %+v, want %+v", le.Passes[0].Paint.Color, want)
	}
	if le.Passes[1].Paint != nil {
		t.Errorf("empty pass grew a paint: %+v", le.Passes[1])
	}
	// The original pass paint stays in sRGB.
	if passPaint.Color != Red {
		t.Error("input pass paint was modified")
	}
}

func TestApplyBrushDeterminism(t *testing.T) {
	tr := newP3Transformer(t)
	src := NewLinearGradientBrush(0, 0, 10, 0).
		AddColorStop(0, Red).
		AddColorStop(1, Blue)

	first := tr.ApplyBrush(src).(*LinearGradientBrush)
	for range 5 {
		again := tr.ApplyBrush(src).(*LinearGradientBrush)
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("conversion not deterministic (-first +again):\n%s", diff)
		}
	}
}
