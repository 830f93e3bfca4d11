package tint

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Paint represents the styling information for drawing: a base color, an
// optional brush, an optional color filter, an optional effect stack, and
// stroke/fill parameters.
//
// Color space conversion ([Transformer.ApplyPaint]) re-expresses the base
// color and every color reachable through Brush, Filter, and Effect;
// stroke/fill parameters are copied unchanged.
type Paint struct {
	// Color is the base paint color, used when no brush is set.
	Color RGBA

	// Brush is the fill or stroke brush. May be nil.
	Brush Brush

	// Filter remaps colors at draw time. May be nil.
	Filter ColorFilter

	// Effect is the draw-time effect stack. May be nil.
	Effect Effect

	// LineWidth is the width of strokes
	LineWidth float64

	// LineCap is the shape of line endpoints
	LineCap LineCap

	// LineJoin is the shape of line joins
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins
	MiterLimit float64

	// FillRule is the fill rule for paths
	FillRule FillRule

	// Antialias enables anti-aliasing
	Antialias bool
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Color:      Black,
		LineWidth:  1.0,
		LineCap:    LineCapButt,
		LineJoin:   LineJoinMiter,
		MiterLimit: 10.0,
		FillRule:   FillRuleNonZero,
		Antialias:  true,
	}
}

// Clone creates a copy of the Paint. Brush, Filter, and Effect are
// shared, not deep-copied; they are immutable by convention.
func (p *Paint) Clone() *Paint {
	out := *p
	return &out
}

// SetBrush sets the brush for this Paint.
func (p *Paint) SetBrush(b Brush) {
	p.Brush = b
}

// ColorAt returns the color the paint produces at the given position:
// the brush sample (or base color), taken through the filter if one is
// set.
func (p *Paint) ColorAt(x, y float64) RGBA {
	c := p.Color
	if p.Brush != nil {
		c = p.Brush.ColorAt(x, y)
	}
	if p.Filter != nil {
		c = p.Filter.Filter(c)
	}
	return c
}
