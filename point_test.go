package tint

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)

	if got := a.Add(b); got != Pt(4, 2) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); got != Pt(2, 6) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %+v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot = %v", got)
	}
}

func TestPointLengthAndDistance(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v", got)
	}
	if got := Pt(0, 0).Distance(p); got != 5 {
		t.Errorf("Distance = %v", got)
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, -4)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %+v", got)
	}
	mid := a.Lerp(b, 0.5)
	if math.Abs(mid.X-5) > 1e-12 || math.Abs(mid.Y+2) > 1e-12 {
		t.Errorf("Lerp(0.5) = %+v", mid)
	}
}
