// Package geometry provides vector, quaternion, and matrix value types for
// 2D and 3D math.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 1e-9

// Vector2 represents a 2D point or direction.
type Vector2 struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of v and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the component-wise difference of v and other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, or the zero vector if v has
// zero length.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	if l < epsilon {
		return Vector2{}
	}
	return v.Scale(1 / l)
}

// Vector3 represents a 3D point or direction.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Add returns the component-wise sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the component-wise difference of v and other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns v with all components multiplied by s.
func (v Vector3) Scale(s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and other.
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v and other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the Euclidean length of v.
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length, or the zero vector if v has
// zero length.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l < epsilon {
		return Vector3{}
	}
	return v.Scale(1 / l)
}

// Quaternion represents a rotation as w + xi + yj + zk.
type Quaternion struct {
	W float64
	X float64
	Y float64
	Z float64
}

// IdentityQuaternion returns the no-rotation quaternion.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle builds a rotation of angle radians around axis.
// The axis does not need to be normalized.
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	axis = axis.Normalize()
	s := math.Sin(angle / 2)
	return Quaternion{
		W: math.Cos(angle / 2),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// Mul returns the Hamilton product q*other: the rotation other followed by q.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
	}
}

// Conjugate returns the quaternion with the vector part negated. For unit
// quaternions this is the inverse rotation.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Length returns the quaternion norm.
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize returns q scaled to unit norm, or the identity if q has zero
// norm.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l < epsilon {
		return IdentityQuaternion()
	}
	return Quaternion{W: q.W / l, X: q.X / l, Y: q.Y / l, Z: q.Z / l}
}

// Rotate applies the rotation q to v. q must be a unit quaternion.
func (q Quaternion) Rotate(v Vector3) Vector3 {
	p := Quaternion{X: v.X, Y: v.Y, Z: v.Z}
	r := q.Mul(p).Mul(q.Conjugate())
	return Vector3{X: r.X, Y: r.Y, Z: r.Z}
}

// Matrix4 is a 4x4 transform matrix in row-major order: M[row][col].
type Matrix4 [4][4]float64

// IdentityMatrix4 returns the identity transform.
func IdentityMatrix4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// TranslationMatrix4 returns a transform that moves points by (x, y, z).
func TranslationMatrix4(x, y, z float64) Matrix4 {
	m := IdentityMatrix4()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// ScalingMatrix4 returns a transform that scales points by (x, y, z).
func ScalingMatrix4(x, y, z float64) Matrix4 {
	m := IdentityMatrix4()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationMatrix4 returns the transform equivalent of the unit quaternion q.
func RotationMatrix4(q Quaternion) Matrix4 {
	xx, yy, zz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	wx, wy, wz := q.W*q.X, q.W*q.Y, q.W*q.Z
	return Matrix4{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy), 0},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx), 0},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the matrix product m*other; applying the result transforms by
// other first, then by m.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[r][k] * other[k][c]
			}
			out[r][c] = sum
		}
	}
	return out
}

// Transpose returns m with rows and columns exchanged.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// Transform applies m to the point v with an implicit w of 1, including the
// translation column.
func (m Matrix4) Transform(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}
