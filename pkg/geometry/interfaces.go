package geometry

import (
	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/material"
)

// Shape is implemented by every object a ray can hit: leaf primitives as well
// as wrappers that transform or reinterpret an inner shape.
type Shape interface {
	// Hit returns a fresh record for the closest intersection with t inside
	// interval, or (nil, false) on a miss.
	Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool)

	// BoundingBox returns a box containing every point Hit can report
	BoundingBox() core.AABB
}
