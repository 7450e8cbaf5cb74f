package bitmap

import (
	"image"
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The resampler treats a Matrix as the forward source-to-destination map
// and inverts it once per call.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-10

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// RotateAt creates a rotation about the point (cx, cy).
func RotateAt(angle, cx, cy float64) Matrix {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}

// ScaleAt creates a scaling about the point (cx, cy).
func ScaleAt(sx, sy, cx, cy float64) Matrix {
	return Translate(cx, cy).Multiply(Scale(sx, sy)).Multiply(Translate(-cx, -cy))
}

// FromAff3 converts an x/image affine matrix, which shares the row-major
// 2x3 layout.
func FromAff3(a f64.Aff3) Matrix {
	return Matrix{
		A: a[0], B: a[1], C: a[2],
		D: a[3], E: a[4], F: a[5],
	}
}

// Aff3 returns m in the x/image layout.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.C, m.D*x + m.E*y + m.F
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(x, y float64) (float64, float64) {
	return m.A*x + m.B*y, m.D*x + m.E*y
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix.
// ok is false, and the identity is returned, if the matrix is not invertible.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Determinant()
	if math.Abs(det) < singularEpsilon || math.IsNaN(det) || math.IsInf(det, 0) {
		return Identity(), false
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// IsScaleOnly returns true if the matrix has no rotation or shear.
func (m Matrix) IsScaleOnly() bool {
	return m.B == 0 && m.D == 0
}

// MaxScaleFactor returns the largest singular value of the linear part,
// the greatest length a unit vector can have after transformation.
func (m Matrix) MaxScaleFactor() float64 {
	p := m.A*m.A + m.D*m.D
	r := m.B*m.B + m.E*m.E
	q := m.A*m.B + m.D*m.E
	diff := p - r
	disc := math.Sqrt(diff*diff + 4*q*q)
	return math.Sqrt((p + r + disc) / 2)
}

// rectEpsilon keeps corners that land a rounding error past an integer
// from growing the bounding box by a whole pixel.
const rectEpsilon = 1e-6

// TransformRect maps the four corners of r through m and returns the
// smallest integer rectangle that contains them.
func (m Matrix) TransformRect(r image.Rectangle) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}

	x0, y0 := float64(r.Min.X), float64(r.Min.Y)
	x1, y1 := float64(r.Max.X), float64(r.Max.Y)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range [4][2]float64{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		x, y := m.TransformPoint(c[0], c[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}

	return image.Rect(
		clampCoord(math.Floor(minX+rectEpsilon)),
		clampCoord(math.Floor(minY+rectEpsilon)),
		clampCoord(math.Ceil(maxX-rectEpsilon)),
		clampCoord(math.Ceil(maxY-rectEpsilon)),
	)
}

// clampCoord converts v to an int, saturating at the int32 range.
func clampCoord(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int(v)
}
