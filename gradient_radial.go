package tint

import "math"

// RadialGradientBrush represents a circular color transition around one
// center point: t = 0 at the center, t = 1 on the circle of the given
// radius. For asymmetric two-circle gradients see [ConicalGradientBrush].
//
// Example:
//
//	gradient := tint.NewRadialGradientBrush(50, 50, 40).
//	    AddColorStop(0, tint.White).
//	    AddColorStop(1, tint.Black)
type RadialGradientBrush struct {
	Center    Point       // Center of the gradient circle
	Radius    float64     // Radius where the gradient ends (t=1)
	Stops     []ColorStop // Color stops defining the gradient
	Extend    ExtendMode  // How gradient extends beyond bounds
	Transform Matrix      // Local coordinate transform
}

// NewRadialGradientBrush creates a new radial gradient around (cx, cy).
func NewRadialGradientBrush(cx, cy, radius float64) *RadialGradientBrush {
	return &RadialGradientBrush{
		Center:    Point{X: cx, Y: cy},
		Radius:    radius,
		Stops:     nil,
		Extend:    ExtendPad,
		Transform: Identity(),
	}
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) SetExtend(mode ExtendMode) *RadialGradientBrush {
	g.Extend = mode
	return g
}

// WithTransform sets the local transform.
// Returns the gradient for method chaining.
func (g *RadialGradientBrush) WithTransform(m Matrix) *RadialGradientBrush {
	g.Transform = m
	return g
}

// brushMarker implements the Brush interface marker.
func (*RadialGradientBrush) brushMarker() {}

// LocalTransform implements Brush.
func (g *RadialGradientBrush) LocalTransform() Matrix {
	if g.Transform == (Matrix{}) {
		return Identity()
	}
	return g.Transform
}

// gradientData implements the gradient capability.
func (g *RadialGradientBrush) gradientData() GradientData {
	return GradientData{
		Kind:   GradientRadial,
		Points: [2]Point{g.Center, {}},
		Radii:  [2]float64{0, g.Radius},
		Stops:  copyStops(g.Stops),
		Extend: g.Extend,
	}
}

// ColorAt returns the color at the given point.
// Implements the Brush interface.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	if g.Radius == 0 {
		return firstStopColor(g.Stops)
	}

	p := g.LocalTransform().Invert().TransformPoint(Pt(x, y))
	dx := p.X - g.Center.X
	dy := p.Y - g.Center.Y
	t := math.Sqrt(dx*dx+dy*dy) / g.Radius

	return colorAtOffset(g.Stops, t, g.Extend)
}
