package geometry

import (
	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/material"
)

// Translate moves an inner shape by a constant offset without copying it
type Translate struct {
	Object Shape
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps shape so it appears displaced by offset
func NewTranslate(shape Shape, offset core.Vec3) *Translate {
	return &Translate{
		Object: shape,
		Offset: offset,
		bbox:   shape.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, delegates, and moves the hit point back.
// Translation does not rotate, so the normal needs no adjustment.
func (t *Translate) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	offsetRay := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, isHit := t.Object.Hit(offsetRay, interval)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the inner bounding box shifted by the offset
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}
