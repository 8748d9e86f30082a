package geometry

import (
	"math"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached unit normal
	bbox       core.AABB         // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices.
// The front face is the side from which V0, V1, V2 appear counter-clockwise.
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		bbox: core.NewAABBFromPoints(
			core.NewVec3(math.Min(v0.X, math.Min(v1.X, v2.X)), math.Min(v0.Y, math.Min(v1.Y, v2.Y)), math.Min(v0.Z, math.Min(v1.Z, v2.Z))),
			core.NewVec3(math.Max(v0.X, math.Max(v1.X, v2.X)), math.Max(v0.Y, math.Max(v1.Y, v2.Y)), math.Max(v0.Z, math.Max(v1.Z, v2.Z))),
		),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tHit := f * edge2.Dot(q)
	if !interval.Contains(tHit) {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        tHit,
		Point:    ray.At(tHit),
		UV:       core.NewVec2(u, v),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
