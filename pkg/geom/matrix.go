package geom

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Mat4 is a row-major 4x4 homogeneous transform acting on column
// vectors (x, y, z, 1).
type Mat4 [4][4]float64

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns a matrix that moves points by d.
func Translate(d v3.Vec) Mat4 {
	return Mat4{
		{1, 0, 0, d.X},
		{0, 1, 0, d.Y},
		{0, 0, 1, d.Z},
		{0, 0, 0, 1},
	}
}

// Scale returns an axis-aligned scale about the origin.
func Scale(s v3.Vec) Mat4 {
	return Mat4{
		{s.X, 0, 0, 0},
		{0, s.Y, 0, 0},
		{0, 0, s.Z, 0},
		{0, 0, 0, 1},
	}
}

// ScaleAbout returns an axis-aligned scale that keeps pivot fixed.
// It is Translate(pivot)·Scale(s)·Translate(-pivot) folded into one matrix.
func ScaleAbout(s, pivot v3.Vec) Mat4 {
	m, n, k := pivot.X, pivot.Y, pivot.Z
	return Mat4{
		{s.X, 0, 0, -m*s.X + m},
		{0, s.Y, 0, -n*s.Y + n},
		{0, 0, s.Z, -k*s.Z + k},
		{0, 0, 0, 1},
	}
}

// RotateX returns a rotation of a radians about the X axis.
func RotateX(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M[1][1], M[1][2] = c, -s
	M[2][1], M[2][2] = s, c
	return M
}

// RotateY returns a rotation of a radians about the Y axis.
func RotateY(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M[0][0], M[0][2] = c, s
	M[2][0], M[2][2] = -s, c
	return M
}

// RotateZ returns a rotation of a radians about the Z axis.
func RotateZ(a float64) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := Identity()
	M[0][0], M[0][1] = c, -s
	M[1][0], M[1][1] = s, c
	return M
}

// RotateXAbout rotates about the line parallel to X through pivot.
func RotateXAbout(a float64, pivot v3.Vec) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	n, k := pivot.Y, pivot.Z
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, -n*c + k*s + n},
		{0, s, c, -n*s - k*c + k},
		{0, 0, 0, 1},
	}
}

// RotateYAbout rotates about the line parallel to Y through pivot.
func RotateYAbout(a float64, pivot v3.Vec) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	m, k := pivot.X, pivot.Z
	return Mat4{
		{c, 0, s, -m*c - k*s + m},
		{0, 1, 0, 0},
		{-s, 0, c, m*s - k*c + k},
		{0, 0, 0, 1},
	}
}

// RotateZAbout rotates about the line parallel to Z through pivot.
func RotateZAbout(a float64, pivot v3.Vec) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	m, n := pivot.X, pivot.Y
	return Mat4{
		{c, -s, 0, -m*c + n*s + m},
		{s, c, 0, -m*s - n*c + n},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Rotate returns the origin rotation about the given coordinate axis.
func Rotate(axis Axis, a float64) Mat4 {
	switch axis {
	case AxisX:
		return RotateX(a)
	case AxisY:
		return RotateY(a)
	default:
		return RotateZ(a)
	}
}

// RotateAbout returns the pivot-corrected rotation about the given axis.
func RotateAbout(axis Axis, a float64, pivot v3.Vec) Mat4 {
	switch axis {
	case AxisX:
		return RotateXAbout(a, pivot)
	case AxisY:
		return RotateYAbout(a, pivot)
	default:
		return RotateZAbout(a, pivot)
	}
}

// Reflect negates the coordinate normal to plane.
func Reflect(plane Plane) Mat4 {
	M := Identity()
	switch plane {
	case PlaneXY:
		M[2][2] = -1
	case PlaneYZ:
		M[0][0] = -1
	case PlaneXZ:
		M[1][1] = -1
	}
	return M
}

// Mul returns A·B. Applied to a point, B acts first.
func (A Mat4) Mul(B Mat4) Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += A[r][k] * B[k][c]
			}
			R[r][c] = sum
		}
	}
	return R
}

// Transpose returns Aᵀ.
func (A Mat4) Transpose() Mat4 {
	var R Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			R[r][c] = A[c][r]
		}
	}
	return R
}

// Apply maps v through A. The result is divided by w unless w is 0 or 1;
// every affine matrix leaves w at exactly 1.
func (A Mat4) Apply(v v3.Vec) v3.Vec {
	in := [4]float64{v.X, v.Y, v.Z, 1}
	var out [4]float64
	for r := 0; r < 4; r++ {
		out[r] = A[r][0]*in[0] + A[r][1]*in[1] + A[r][2]*in[2] + A[r][3]*in[3]
	}
	if w := out[3]; w != 1 && w != 0 {
		return v3.Vec{X: out[0] / w, Y: out[1] / w, Z: out[2] / w}
	}
	return v3.Vec{X: out[0], Y: out[1], Z: out[2]}
}

// Equals reports whether every entry of A and B differs by at most tol.
func (A Mat4) Equals(B Mat4, tol float64) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(A[r][c]-B[r][c]) > tol {
				return false
			}
		}
	}
	return true
}
