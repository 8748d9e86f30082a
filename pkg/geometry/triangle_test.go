package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/material"
)

func TestTriangle_Hit(t *testing.T) {
	// Create a triangle in the XY plane
	v0 := core.NewVec3(0, 0, 0)
	v1 := core.NewVec3(1, 0, 0)
	v2 := core.NewVec3(0, 1, 0)
	triangle := NewTriangle(v0, v1, v2, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	tests := []struct {
		name      string
		ray       core.Ray
		interval  core.Interval
		shouldHit bool
		expectedT float64
	}{
		{
			name:      "Ray hits triangle center",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			interval:  core.NewInterval(0.001, 10.0),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray hits triangle edge",
			ray:       core.NewRay(core.NewVec3(0.5, 0, -1), core.NewVec3(0, 0, 1)),
			interval:  core.NewInterval(0.001, 10.0),
			shouldHit: true,
			expectedT: 1.0,
		},
		{
			name:      "Ray misses triangle",
			ray:       core.NewRay(core.NewVec3(0.75, 0.75, -1), core.NewVec3(0, 0, 1)),
			interval:  core.NewInterval(0.001, 10.0),
			shouldHit: false,
		},
		{
			name:      "Hit beyond interval",
			ray:       core.NewRay(core.NewVec3(0.25, 0.25, -1), core.NewVec3(0, 0, 1)),
			interval:  core.NewInterval(0.001, 0.5),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := triangle.Hit(tt.ray, tt.interval)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, isHit)
			}
			if tt.shouldHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestTriangle_NormalAndBoundingBox(t *testing.T) {
	triangle := NewTriangle(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 3, 0), nil)

	assertVecNear(t, "normal", core.NewVec3(0, 0, 1), triangle.Normal(), 1e-12)

	bbox := triangle.BoundingBox()
	if bbox.X != core.NewInterval(0, 2) || bbox.Y != core.NewInterval(0, 3) {
		t.Errorf("Expected X [0,2] and Y [0,3], got %v", bbox)
	}
	if math.Abs(bbox.Z.Size()-core.MinAABBPadding) > 1e-12 {
		t.Errorf("Expected flat Z axis padded, got size %g", bbox.Z.Size())
	}
}
