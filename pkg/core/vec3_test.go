package core

import (
	"math"
	"testing"
)

func TestVec3_Get(t *testing.T) {
	v := NewVec3(1, 2, 3)

	for axis, expected := range []float64{1, 2, 3, 3} {
		if got := v.Get(axis); got != expected {
			t.Errorf("Get(%d) = %g, expected %g", axis, got, expected)
		}
	}
}

func TestVec3_CrossAndDot(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("expected x cross y = z, got %v", got)
	}
	if got := x.Dot(y); got != 0 {
		t.Errorf("expected perpendicular dot 0, got %g", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 12).Normalize()

	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("expected unit length, got %g", v.Length())
	}
	if zero := NewVec3(0, 0, 0).Normalize(); zero != NewVec3(0, 0, 0) {
		t.Errorf("expected zero vector to stay zero, got %v", zero)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAtTime(NewVec3(1, 1, 1), NewVec3(0, 0, 2), 0.25)

	if got := ray.At(1.5); got != NewVec3(1, 1, 4) {
		t.Errorf("expected (1,1,4), got %v", got)
	}
	if ray.Time != 0.25 {
		t.Errorf("expected time 0.25, got %g", ray.Time)
	}
}

func TestDegreesToRadians(t *testing.T) {
	if got := DegreesToRadians(180); math.Abs(got-math.Pi) > 1e-15 {
		t.Errorf("expected pi, got %g", got)
	}
}
