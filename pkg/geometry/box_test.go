package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-hittables/pkg/core"
)

func TestNewBox_CornerOrder(t *testing.T) {
	a := NewBox(core.NewVec3(1, 2, 3), core.NewVec3(-1, -2, -3), nil)
	b := NewBox(core.NewVec3(-1, -2, -3), core.NewVec3(1, 2, 3), nil)

	if a.Min != b.Min || a.Max != b.Max {
		t.Errorf("Expected identical corners, got [%v %v] and [%v %v]", a.Min, a.Max, b.Min, b.Max)
	}
	// Each face is padded, so the union may overhang by half the padding
	expected := core.NewAABBFromPoints(core.NewVec3(-1, -2, -3), core.NewVec3(1, 2, 3))
	assertAABBNear(t, expected, a.BoundingBox(), core.MinAABBPadding)
}

func TestBox_Hit_OutwardNormals(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)

	tests := []struct {
		name           string
		origin         core.Vec3
		direction      core.Vec3
		expectedNormal core.Vec3
	}{
		{"front", core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)},
		{"back", core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)},
		{"right", core.NewVec3(5, 0, 0), core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0)},
		{"left", core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0)},
		{"top", core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0)},
		{"bottom", core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(core.NewRay(tt.origin, tt.direction), forwardInterval)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-4) > 1e-9 {
				t.Errorf("Expected t=4, got %f", hit.T)
			}
			if !hit.FrontFace {
				t.Error("Expected outside hit to be front facing")
			}
			assertVecNear(t, "normal", tt.expectedNormal, hit.Normal, 1e-9)
		})
	}
}

func TestBox_Hit_FromInside(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), nil)

	hit, isHit := box.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), forwardInterval)
	if !isHit {
		t.Fatal("Expected hit from inside")
	}
	if math.Abs(hit.T-1) > 1e-9 {
		t.Errorf("Expected t=1, got %f", hit.T)
	}
	if hit.FrontFace {
		t.Error("Expected inside hit to be back facing")
	}
	assertVecNear(t, "normal", core.NewVec3(0, 0, -1), hit.Normal, 1e-9)
}
