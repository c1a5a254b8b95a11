package mathutil

import "math"

// Vector is a free 3-component vector (value type, stack-allocated).
// It carries directed quantities: segment axes, displacements, field values.
type Vector [3]float64

// Location is a point in space. Same layout as Vector, but positions are
// never summed with vectors directly; use Sub and Offset.
type Location [3]float64

func NewVector(x, y, z float64) Vector {
	return Vector{x, y, z}
}

func NewLocation(x, y, z float64) Location {
	return Location{x, y, z}
}

// FromPolar builds a vector from an amplitude, an azimuth phi in the X-Y
// plane measured from +X, and an elevation theta measured from the X-Y plane
// toward +Z. Angles are in radians and are not range-checked.
func FromPolar(amplitude, phi, theta float64) Vector {
	return Vector{
		amplitude * math.Cos(theta) * math.Cos(phi),
		amplitude * math.Cos(theta) * math.Sin(phi),
		amplitude * math.Sin(theta),
	}
}

func (v Vector) X() float64 { return v[0] }
func (v Vector) Y() float64 { return v[1] }
func (v Vector) Z() float64 { return v[2] }

// Add returns the component-wise sum a + b.
func Add(a, b Vector) Vector {
	return Vector{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vector) Add(b Vector) Vector {
	return Add(a, b)
}

// Accumulate adds other into v in place. Identical to v = v.Add(other).
func (v *Vector) Accumulate(other Vector) {
	*v = Add(*v, other)
}

func (a Vector) Sub(b Vector) Vector {
	return Vector{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v[0] * s, v[1] * s, v[2] * s}
}

func (a Vector) Dot(b Vector) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vector) Cross(b Vector) Vector {
	return Vector{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Abs returns the Euclidean norm.
func (v Vector) Abs() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

func (v Vector) Normalize() Vector {
	l := v.Abs()
	if l < 1e-12 {
		return Vector{}
	}
	return Vector{v[0] / l, v[1] / l, v[2] / l}
}

// IsFinite reports whether no component is NaN or ±Inf.
func (v Vector) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

func (p Location) X() float64 { return p[0] }
func (p Location) Y() float64 { return p[1] }
func (p Location) Z() float64 { return p[2] }

// Sub returns the displacement from q to p.
func (p Location) Sub(q Location) Vector {
	return Vector{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
}

// Offset returns p moved by d.
func (p Location) Offset(d Vector) Location {
	return Location{p[0] + d[0], p[1] + d[1], p[2] + d[2]}
}

func (p Location) IsFinite() bool {
	return Vector(p).IsFinite()
}
