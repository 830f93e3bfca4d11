// Package colormath provides the matrix and transfer-curve math behind
// color space conversion: deriving RGB-to-XYZ matrices from chromaticity
// coordinates, Bradford chromatic adaptation between white points, and
// evaluation of transfer curves.
//
// All math runs in float32, matching the pixel pipeline. Conversions are
// fused into a single 3x3 matrix at construction time so that the only
// per-color linear operation is one matrix multiply.
package colormath

// Vec3 is a 3-component float32 vector (XYZ or linear RGB).
type Vec3 [3]float32

// Mat3 is a 3x3 float32 matrix in row-major order.
type Mat3 [3][3]float32

// Identity returns the 3x3 identity matrix.
func Identity() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul multiplies two matrices (m * other).
func Mul(a, b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			var sum float32
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// MulVec applies the matrix to a vector.
func MulVec(m Mat3, v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Invert returns the inverse of m. The second result is false if m is
// singular (degenerate primaries yield such matrices).
func Invert(m Mat3) (Mat3, bool) {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	co00 := e*i - f*h
	co01 := f*g - d*i
	co02 := d*h - e*g

	det := a*co00 + b*co01 + c*co02
	if det > -1e-7 && det < 1e-7 {
		return Mat3{}, false
	}
	inv := 1 / det

	return Mat3{
		{co00 * inv, (c*h - b*i) * inv, (b*f - c*e) * inv},
		{co01 * inv, (a*i - c*g) * inv, (c*d - a*f) * inv},
		{co02 * inv, (b*g - a*h) * inv, (a*e - b*d) * inv},
	}, true
}

// Bradford cone response matrices, forward and inverse.
var (
	bradford = Mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	invBradford = Mat3{
		{0.9869929, -0.1470543, 0.1599627},
		{0.4323053, 0.5183603, 0.0492912},
		{-0.0085287, 0.0400428, 0.9684867},
	}
)

// XYFromChromaticity converts a CIE xy chromaticity to an XYZ tristimulus
// value normalized to Y = 1. The second result is false for y == 0, which
// has no XYZ representation.
func XYFromChromaticity(x, y float32) (Vec3, bool) {
	if y == 0 {
		return Vec3{}, false
	}
	return Vec3{x / y, 1, (1 - x - y) / y}, true
}

// Adaptation builds a Bradford chromatic adaptation matrix taking XYZ
// values relative to srcWhite to XYZ values relative to dstWhite.
func Adaptation(srcWhite, dstWhite Vec3) Mat3 {
	src := MulVec(bradford, srcWhite)
	dst := MulVec(bradford, dstWhite)
	diag := Mat3{
		{dst[0] / src[0], 0, 0},
		{0, dst[1] / src[1], 0},
		{0, 0, dst[2] / src[2]},
	}
	return Mul(invBradford, Mul(diag, bradford))
}

// RGBToXYZ derives the linear-RGB-to-XYZ matrix for a space described by
// its red, green, and blue primaries and white point, all as CIE xy
// chromaticities. The white point is normalized to Y = 1. The second
// result is false when the primaries are degenerate (collinear primaries
// or a zero y coordinate).
func RGBToXYZ(rx, ry, gx, gy, bx, by, wx, wy float32) (Mat3, bool) {
	r, ok := XYFromChromaticity(rx, ry)
	if !ok {
		return Mat3{}, false
	}
	g, ok := XYFromChromaticity(gx, gy)
	if !ok {
		return Mat3{}, false
	}
	b, ok := XYFromChromaticity(bx, by)
	if !ok {
		return Mat3{}, false
	}
	w, ok := XYFromChromaticity(wx, wy)
	if !ok {
		return Mat3{}, false
	}

	// Columns are the unscaled primary XYZ values. Solve for the scale
	// factors that make the primaries sum to the white point.
	prim := Mat3{
		{r[0], g[0], b[0]},
		{r[1], g[1], b[1]},
		{r[2], g[2], b[2]},
	}
	inv, ok := Invert(prim)
	if !ok {
		return Mat3{}, false
	}
	s := MulVec(inv, w)

	return Mat3{
		{s[0] * r[0], s[1] * g[0], s[2] * b[0]},
		{s[0] * r[1], s[1] * g[1], s[2] * b[1]},
		{s[0] * r[2], s[1] * g[2], s[2] * b[2]},
	}, true
}
