package geometry

import (
	"math"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/material"
)

// RotateY rotates an inner shape about the Y axis. Positive angles turn +X
// towards -Z (right-handed, looking down from +Y).
type RotateY struct {
	Object   Shape
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps shape rotated by angle degrees about the Y axis
func NewRotateY(shape Shape, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   shape,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
	r.bbox = r.rotatedBoundingBox(shape.BoundingBox())
	return r
}

// rotatedBoundingBox rotates all eight corners of bbox and returns their extent
func (r *RotateY) rotatedBoundingBox(bbox core.AABB) core.AABB {
	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					pickBound(bbox.X, i),
					pickBound(bbox.Y, j),
					pickBound(bbox.Z, k),
				)
				rotated := r.toWorld(corner)

				min = core.NewVec3(math.Min(min.X, rotated.X), math.Min(min.Y, rotated.Y), math.Min(min.Z, rotated.Z))
				max = core.NewVec3(math.Max(max.X, rotated.X), math.Max(max.Y, rotated.Y), math.Max(max.Z, rotated.Z))
			}
		}
	}

	return core.NewAABBFromPoints(min, max)
}

func pickBound(interval core.Interval, upper int) float64 {
	if upper == 1 {
		return interval.Max
	}
	return interval.Min
}

// toObject applies the inverse rotation (world to object space)
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld applies the forward rotation (object to world space)
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, delegates, and rotates the hit
// point and normal back into world space.
func (r *RotateY) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	rotatedRay := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, isHit := r.Object.Hit(rotatedRay, interval)
	if !isHit {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the world-space extent of the rotated inner box
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}
