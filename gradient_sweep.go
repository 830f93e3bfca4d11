package tint

import "math"

// SweepGradientBrush represents an angular (conic) color transition around
// a center point. Colors sweep from StartAngle to EndAngle. Also known as
// a conic gradient.
//
// Example:
//
//	// Color wheel
//	wheel := tint.NewSweepGradientBrush(50, 50, 0).
//	    AddColorStop(0, tint.Red).
//	    AddColorStop(0.5, tint.Cyan).
//	    AddColorStop(1, tint.Red)
type SweepGradientBrush struct {
	Center     Point       // Center of the sweep
	StartAngle float64     // Start angle in radians
	EndAngle   float64     // End angle in radians
	Stops      []ColorStop // Color stops defining the gradient
	Extend     ExtendMode  // How gradient extends beyond bounds
	Transform  Matrix      // Local coordinate transform
}

// NewSweepGradientBrush creates a new sweep (conic) gradient centered at (cx, cy).
// startAngle is the angle where the gradient begins (in radians).
// The gradient sweeps a full 360 degrees by default.
func NewSweepGradientBrush(cx, cy, startAngle float64) *SweepGradientBrush {
	return &SweepGradientBrush{
		Center:     Point{X: cx, Y: cy},
		StartAngle: startAngle,
		EndAngle:   startAngle + 2*math.Pi, // Full rotation by default
		Stops:      nil,
		Extend:     ExtendPad,
		Transform:  Identity(),
	}
}

// SetEndAngle sets the end angle of the sweep.
// Returns the gradient for method chaining.
func (g *SweepGradientBrush) SetEndAngle(endAngle float64) *SweepGradientBrush {
	g.EndAngle = endAngle
	return g
}

// AddColorStop adds a color stop at the specified offset.
// Offset should be in the range [0, 1].
// Returns the gradient for method chaining.
func (g *SweepGradientBrush) AddColorStop(offset float64, c RGBA) *SweepGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets the extend mode for the gradient.
// Returns the gradient for method chaining.
func (g *SweepGradientBrush) SetExtend(mode ExtendMode) *SweepGradientBrush {
	g.Extend = mode
	return g
}

// WithTransform sets the local transform.
// Returns the gradient for method chaining.
func (g *SweepGradientBrush) WithTransform(m Matrix) *SweepGradientBrush {
	g.Transform = m
	return g
}

// brushMarker implements the Brush interface marker.
func (*SweepGradientBrush) brushMarker() {}

// LocalTransform implements Brush.
func (g *SweepGradientBrush) LocalTransform() Matrix {
	if g.Transform == (Matrix{}) {
		return Identity()
	}
	return g.Transform
}

// gradientData implements the gradient capability. The sweep range is
// carried in Angles.
func (g *SweepGradientBrush) gradientData() GradientData {
	return GradientData{
		Kind:   GradientSweep,
		Points: [2]Point{g.Center, {}},
		Angles: [2]float64{g.StartAngle, g.EndAngle},
		Stops:  copyStops(g.Stops),
		Extend: g.Extend,
	}
}

// ColorAt returns the color at the given point.
// Implements the Brush interface.
func (g *SweepGradientBrush) ColorAt(x, y float64) RGBA {
	p := g.LocalTransform().Invert().TransformPoint(Pt(x, y))

	// Handle point at center (undefined angle)
	dx := p.X - g.Center.X
	dy := p.Y - g.Center.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(g.Stops)
	}

	// atan2 returns angle in range [-Pi, Pi]
	angle := math.Atan2(dy, dx)

	t := g.angleToT(angle)

	return colorAtOffset(g.Stops, t, g.Extend)
}

// angleToT converts an angle to a gradient parameter t in [0, 1].
func (g *SweepGradientBrush) angleToT(angle float64) float64 {
	sweepRange := g.EndAngle - g.StartAngle

	// Handle zero sweep (degenerate case)
	if sweepRange == 0 {
		return 0
	}

	relativeAngle := normalizeAngle(angle-g.StartAngle, sweepRange)

	return relativeAngle / sweepRange
}

// normalizeAngle normalizes an angle relative to a sweep direction.
func normalizeAngle(angle float64, sweepRange float64) float64 {
	twoPi := 2 * math.Pi

	if sweepRange > 0 {
		// Positive sweep: normalize to [0, 2*Pi)
		for angle < 0 {
			angle += twoPi
		}
		for angle >= twoPi {
			angle -= twoPi
		}
	} else {
		// Negative sweep: normalize to (-2*Pi, 0]
		for angle > 0 {
			angle -= twoPi
		}
		for angle <= -twoPi {
			angle += twoPi
		}
	}

	return angle
}
