package core

import (
	"math"
	"testing"
)

func TestSat(t *testing.T) {
	tests := []struct {
		name  string
		v     Vec3
		limit float64
		want  float64
	}{
		{"under limit unchanged", Vec3{3, 0, 0}, 10, 3},
		{"over limit clipped", Vec3{30, 40, 0}, 10, 10},
		{"zero vector stays zero", Vec3{0, 0, 0}, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sat(tt.v, tt.limit).Norm()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Sat(%v, %v) norm = %v, want %v", tt.v, tt.limit, got, tt.want)
			}
		})
	}
}

func TestUnitZeroVector(t *testing.T) {
	if u := (Vec3{}).Unit(); u != (Vec3{}) {
		t.Errorf("Unit() of zero vector = %v, want zero vector", u)
	}
}

func TestClipTurnWithinLimit(t *testing.T) {
	v := Vec3{10, 0, 0}
	desired := Vec3{10, 1, 0}
	got := ClipTurn(v, desired, 1.0) // generous limit, should reach desired direction exactly
	want := desired.Unit().Scale(10)
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
		t.Errorf("ClipTurn = %v, want %v", got, want)
	}
	if math.Abs(got.Norm()-10) > 1e-9 {
		t.Errorf("ClipTurn changed speed: got norm %v, want 10", got.Norm())
	}
}

func TestClipTurnRespectsMaxAngle(t *testing.T) {
	v := Vec3{1, 0, 0}
	desired := Vec3{0, 1, 0} // 90 degrees away
	maxAngle := 0.1          // radians, much less than 90 degrees
	got := ClipTurn(v, desired, maxAngle)

	if math.Abs(got.Norm()-1) > 1e-9 {
		t.Errorf("ClipTurn changed speed: got norm %v, want 1", got.Norm())
	}

	angleTurned := math.Acos(clampCos(v.Unit().Dot(got.Unit())))
	if math.Abs(angleTurned-maxAngle) > 1e-6 {
		t.Errorf("ClipTurn turned by %v rad, want %v rad", angleTurned, maxAngle)
	}
}

func TestClipTurnDegenerateDesired(t *testing.T) {
	v := Vec3{5, 0, 0}
	got := ClipTurn(v, Vec3{}, 0.5)
	if got != v {
		t.Errorf("ClipTurn with zero desired = %v, want unchanged %v", got, v)
	}
}

func clampCos(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}
