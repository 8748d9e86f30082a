package geometry

import (
	"math"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/material"
)

// Box represents an axis-aligned box made up of 6 quads. Rotated boxes are
// built by wrapping a Box in RotateY and Translate.
type Box struct {
	Min      core.Vec3         // Minimum corner
	Max      core.Vec3         // Maximum corner
	Material material.Material // Material for all faces
	faces    *ShapeList
}

// NewBox creates a box spanning two opposite corners given in any order
func NewBox(a, b core.Vec3, material material.Material) *Box {
	min := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	max := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	faces := NewShapeList(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, material),          // front (Z+)
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, material), // right (X+)
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, material), // back (Z-)
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, material),          // left (X-)
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), material), // top (Y+)
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, material),          // bottom (Y-)
	)

	return &Box{
		Min:      min,
		Max:      max,
		Material: material,
		faces:    faces,
	}
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, interval)
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.faces.BoundingBox()
}
