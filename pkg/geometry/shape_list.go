package geometry

import (
	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/material"
)

// ShapeList is a flat group of shapes tested linearly for the closest hit
type ShapeList struct {
	Shapes []Shape
	bbox   core.AABB
}

// NewShapeList creates a list from the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	list := &ShapeList{bbox: core.EmptyAABB}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape and grows the cached bounding box
func (l *ShapeList) Add(shape Shape) {
	l.Shapes = append(l.Shapes, shape)
	l.bbox = core.NewAABBUnion(l.bbox, shape.BoundingBox())
}

// Hit returns the closest hit among all shapes
func (l *ShapeList) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestT := interval.Max

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, core.NewInterval(interval.Min, closestT)); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all child bounding boxes
func (l *ShapeList) BoundingBox() core.AABB {
	return l.bbox
}
