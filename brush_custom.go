package tint

// ColorFunc is a function that returns a color at a given position.
// Used by CustomBrush to define custom brush patterns.
type ColorFunc func(x, y float64) RGBA

// CustomBrush is a brush with a user-defined color function.
// It allows for arbitrary patterns and procedural textures.
//
// A CustomBrush is opaque to color space conversion: its colors are
// produced by an arbitrary function that cannot be introspected, so
// [Transformer.ApplyBrush] passes it through unconverted. Callers who
// need converted procedural colors should convert inside Func using a
// Transformer of their own.
//
// Example:
//
//	// Create a checkerboard pattern
//	checker := tint.NewCustomBrush(func(x, y float64) tint.RGBA {
//	    if (int(x/10)+int(y/10))%2 == 0 {
//	        return tint.Black
//	    }
//	    return tint.White
//	})
type CustomBrush struct {
	// Func is the color function that determines the color at each point.
	Func ColorFunc

	// Name is an optional identifier for debugging and logging.
	Name string

	// Transform is the local coordinate transform.
	Transform Matrix
}

// brushMarker implements the sealed Brush interface.
func (*CustomBrush) brushMarker() {}

// ColorAt implements Brush. Returns the color from the custom function.
func (b *CustomBrush) ColorAt(x, y float64) RGBA {
	if b.Func == nil {
		return Transparent
	}
	return b.Func(x, y)
}

// LocalTransform implements Brush.
func (b *CustomBrush) LocalTransform() Matrix {
	if b.Transform == (Matrix{}) {
		return Identity()
	}
	return b.Transform
}

// NewCustomBrush creates a CustomBrush from a color function.
func NewCustomBrush(fn ColorFunc) *CustomBrush {
	return &CustomBrush{Func: fn, Transform: Identity()}
}

// WithName returns a new CustomBrush with the specified name.
// Useful for debugging and logging.
func (b *CustomBrush) WithName(name string) *CustomBrush {
	return &CustomBrush{Func: b.Func, Name: name, Transform: b.Transform}
}

// WithTransform returns a new CustomBrush with the given local transform.
func (b *CustomBrush) WithTransform(m Matrix) *CustomBrush {
	return &CustomBrush{Func: b.Func, Name: b.Name, Transform: m}
}
