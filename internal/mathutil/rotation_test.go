package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertMatInDelta(t *testing.T, want, got Mat3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "element %d", i)
	}
}

func TestEulerMat3MatchesComposedRotations(t *testing.T) {
	rx, ry, rz := Deg2Rad(30), Deg2Rad(-45), Deg2Rad(120)
	want := Mat3Mul(RotZ(rz), Mat3Mul(RotY(ry), RotX(rx)))
	assertMatInDelta(t, want, EulerMat3(rx, ry, rz))
}

func TestRotationIsProper(t *testing.T) {
	m := EulerMat3(0.3, 1.1, -2.4)
	x := m.MulVec(Vector{1, 0, 0})
	y := m.MulVec(Vector{0, 1, 0})
	z := m.MulVec(Vector{0, 0, 1})

	assert.InDelta(t, 1.0, x.Abs(), 1e-9)
	assert.InDelta(t, 1.0, y.Abs(), 1e-9)
	assert.InDelta(t, 0.0, x.Dot(y), 1e-9)
	assertVecInDelta(t, z, x.Cross(y))
}

func TestAlignZ(t *testing.T) {
	tests := []struct {
		name string
		n    Vector
	}{
		{"x", Vector{1, 0, 0}},
		{"y", Vector{0, 2, 0}},
		{"z", Vector{0, 0, 1}},
		{"minus z", Vector{0, 0, -3}},
		{"oblique", Vector{1, -1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AlignZ(tt.n).MulVec(Vector{0, 0, 1})
			assertVecInDelta(t, tt.n.Normalize(), got)
		})
	}

	assert.Equal(t, Mat3Identity(), AlignZ(Vector{}))
}

func TestAxisAngleQuat(t *testing.T) {
	m := QuatToMat3(AxisAngleQuat(Vector{0, 0, 5}, math.Pi/2))
	assertVecInDelta(t, Vector{0, 1, 0}, m.MulVec(Vector{1, 0, 0}))
}
