package tint

import "math"

// ConicalGradientBrush represents a two-point conical color transition:
// the gradient interpolates the family of circles between a start circle
// (Start, StartRadius) at t = 0 and an end circle (End, EndRadius) at
// t = 1. With coincident centers this reduces to an annular radial
// gradient; with a zero start radius it produces a focal spotlight.
//
// Example:
//
//	spotlight := tint.NewConicalGradientBrush(30, 30, 0, 50, 50, 40).
//	    AddColorStop(0, tint.White).
//	    AddColorStop(1, tint.Black)
type ConicalGradientBrush struct {
	Start       Point       // Center of the start circle (t=0)
	End         Point       // Center of the end circle (t=1)
	StartRadius float64     // Radius of the start circle
	EndRadius   float64     // Radius of the end circle
	Stops       []ColorStop // Color stops defining the gradient
	Extend      ExtendMode  // How gradient extends beyond bounds
	Transform   Matrix      // Local coordinate transform
}

// NewConicalGradientBrush creates a new two-point conical gradient from
// the circle at (x0, y0) with radius r0 to the circle at (x1, y1) with
// radius r1.
func NewConicalGradientBrush(x0, y0, r0, x1, y1, r1 float64) *ConicalGradientBrush {
	return &ConicalGradientBrush{
		Start:       Point{X: x0, Y: y0},
		End:         Point{X: x1, Y: y1},
		StartRadius: r0,
		EndRadius:   r1,
		Stops:       nil,
		Extend:      ExtendPad,
		Transform:   Identity(),
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *ConicalGradientBrush) AddColorStop(offset float64, c RGBA) *ConicalGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *ConicalGradientBrush) SetExtend(mode ExtendMode) *ConicalGradientBrush {
	g.Extend = mode
	return g
}

// WithTransform sets the local transform.
// Returns the gradient for method chaining.
func (g *ConicalGradientBrush) WithTransform(m Matrix) *ConicalGradientBrush {
	g.Transform = m
	return g
}

// brushMarker implements the Brush interface marker.
func (*ConicalGradientBrush) brushMarker() {}

// LocalTransform implements Brush.
func (g *ConicalGradientBrush) LocalTransform() Matrix {
	if g.Transform == (Matrix{}) {
		return Identity()
	}
	return g.Transform
}

// gradientData implements the gradient capability.
func (g *ConicalGradientBrush) gradientData() GradientData {
	return GradientData{
		Kind:   GradientConical,
		Points: [2]Point{g.Start, g.End},
		Radii:  [2]float64{g.StartRadius, g.EndRadius},
		Stops:  copyStops(g.Stops),
		Extend: g.Extend,
	}
}

// ColorAt returns the color at the given point.
// Implements the Brush interface.
func (g *ConicalGradientBrush) ColorAt(x, y float64) RGBA {
	p := g.LocalTransform().Invert().TransformPoint(Pt(x, y))
	t, ok := g.computeT(p.X, p.Y)
	if !ok {
		return Transparent
	}
	return colorAtOffset(g.Stops, t, g.Extend)
}

// computeT finds the parameter of the interpolated circle passing through
// the point. The circle family is
//
//	center(t) = Start + t*(End-Start),  radius(t) = r0 + t*(r1-r0)
//
// and solving |p - center(t)| = radius(t) yields a quadratic in t. The
// larger root with a non-negative radius wins, matching the usual
// outermost-circle convention.
func (g *ConicalGradientBrush) computeT(x, y float64) (float64, bool) {
	px := x - g.Start.X
	py := y - g.Start.Y
	cx := g.End.X - g.Start.X
	cy := g.End.Y - g.Start.Y
	dr := g.EndRadius - g.StartRadius
	r0 := g.StartRadius

	a := cx*cx + cy*cy - dr*dr
	b := -2 * (px*cx + py*cy + r0*dr)
	c := px*px + py*py - r0*r0

	if a == 0 {
		// Degenerate family: identical circles or a linear equation.
		if b == 0 {
			if dr == 0 && r0 > 0 {
				d := math.Sqrt(px*px+py*py) / r0
				return d, true
			}
			return 0, false
		}
		t := -c / b
		if r0+t*dr < 0 {
			return 0, false
		}
		return t, true
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sqrtD := math.Sqrt(disc)
	t1 := (-b + sqrtD) / (2 * a)
	t2 := (-b - sqrtD) / (2 * a)

	// Prefer the larger root with a valid radius.
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	if r0+t1*dr >= 0 {
		return t1, true
	}
	if r0+t2*dr >= 0 {
		return t2, true
	}
	return 0, false
}
