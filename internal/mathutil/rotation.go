package mathutil

import "math"

// RotX returns a 3×3 rotation matrix around the X axis. Angle in radians.
func RotX(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}

// RotY returns a 3×3 rotation matrix around the Y axis.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

// RotZ returns a 3×3 rotation matrix around the Z axis.
func RotZ(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}

// EulerMat3 returns the rotation for Euler XYZ angles in radians,
// equivalent to RotZ(rz) × RotY(ry) × RotX(rx).
func EulerMat3(rx, ry, rz float64) Mat3 {
	return QuatToMat3(EulerToQuat(rx, ry, rz))
}

// AlignZ returns the rotation taking +Z onto the direction of n.
// A zero n yields the identity.
func AlignZ(n Vector) Mat3 {
	u := n.Normalize()
	if u == (Vector{}) {
		return Mat3Identity()
	}
	z := Vector{0, 0, 1}
	c := z.Dot(u)
	if c < -1+1e-12 {
		return RotX(math.Pi)
	}
	angle := math.Acos(math.Max(-1, math.Min(1, c)))
	return QuatToMat3(AxisAngleQuat(z.Cross(u), angle))
}
