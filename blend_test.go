package tint

import "testing"

func TestBlendModes(t *testing.T) {
	src := RGBA2(1, 0, 0, 0.5)
	dst := RGBA2(0, 0, 1, 1)

	tests := []struct {
		name string
		mode BlendMode
		want RGBA
	}{
		{"source over", BlendSourceOver, RGBA{R: 0.5, G: 0, B: 0.5, A: 1}},
		{"source", BlendSource, src},
		{"destination in", BlendDestinationIn, RGBA{R: 0, G: 0, B: 1, A: 0.5}},
		{"destination out", BlendDestinationOut, RGBA{R: 0, G: 0, B: 1, A: 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blend(src, dst, tt.mode)
			if !colorsEqual(got, tt.want, colorEpsilon) {
				t.Errorf("Blend(%v) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestBlendMultiplyDarkens(t *testing.T) {
	got := Blend(RGBA2(0.5, 0.5, 0.5, 1), White, BlendMultiply)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !colorsEqual(got, want, colorEpsilon) {
		t.Errorf("multiply = %+v, want %+v", got, want)
	}
}

func TestBlendScreenLightens(t *testing.T) {
	got := Blend(RGBA2(0.5, 0.5, 0.5, 1), RGBA2(0.5, 0.5, 0.5, 1), BlendScreen)
	if got.R <= 0.5 {
		t.Errorf("screen result %v should be lighter than operands", got.R)
	}
}

func TestBlendPlusClamps(t *testing.T) {
	got := Blend(White, White, BlendPlus)
	if got != White {
		t.Errorf("plus of two whites = %+v, want clamped white", got)
	}
}

func TestBlendZeroAlpha(t *testing.T) {
	got := Blend(Transparent, Transparent, BlendSourceOver)
	if got != Transparent {
		t.Errorf("blend of transparents = %+v", got)
	}
}

func TestBlendModeString(t *testing.T) {
	if BlendSourceOver.String() != "SourceOver" {
		t.Errorf("String() = %q", BlendSourceOver.String())
	}
	if BlendMode(200).String() != "Unknown" {
		t.Errorf("unknown mode String() = %q", BlendMode(200).String())
	}
}
