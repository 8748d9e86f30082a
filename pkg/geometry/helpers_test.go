package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/material"
)

// MockShape for testing
type MockShape struct {
	boundingBox core.AABB
	hitFn       func(ray core.Ray, interval core.Interval) (*material.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	return m.hitFn(ray, interval)
}

func (m MockShape) BoundingBox() core.AABB {
	return m.boundingBox
}

// fixedSampler returns the same value from every call
type fixedSampler struct {
	value float64
}

func (f fixedSampler) Get1D() float64 { return f.value }
func (f fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(f.value, f.value)
}
func (f fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(f.value, f.value, f.value)
}

func assertVecNear(t *testing.T, label string, expected, got core.Vec3, tolerance float64) {
	t.Helper()
	if math.Abs(expected.X-got.X) > tolerance ||
		math.Abs(expected.Y-got.Y) > tolerance ||
		math.Abs(expected.Z-got.Z) > tolerance {
		t.Errorf("%s: expected %v, got %v", label, expected, got)
	}
}

func assertAABBNear(t *testing.T, expected, got core.AABB, tolerance float64) {
	t.Helper()
	assertVecNear(t, "bbox min", expected.Min(), got.Min(), tolerance)
	assertVecNear(t, "bbox max", expected.Max(), got.Max(), tolerance)
}

var forwardInterval = core.NewInterval(0.001, math.Inf(1))
