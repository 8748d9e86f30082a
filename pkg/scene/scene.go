package scene

import (
	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/geometry"
	"github.com/df07/go-hittables/pkg/material"
)

// Scene contains a composed shape graph and a viewpoint for probing it
type Scene struct {
	Name   string
	Eye    core.Vec3           // Where probe rays start
	LookAt core.Vec3           // Center of the probe grid
	VFov   float64             // Vertical field of view in degrees
	Shapes []geometry.Shape    // Top-level objects in the scene
	World  *geometry.ShapeList // All shapes, tested linearly
}

// newScene creates an empty scene
func newScene(name string, eye, lookAt core.Vec3, vfov float64) *Scene {
	return &Scene{
		Name:   name,
		Eye:    eye,
		LookAt: lookAt,
		VFov:   vfov,
		World:  geometry.NewShapeList(),
	}
}

// Add appends top-level shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	for _, shape := range shapes {
		s.Shapes = append(s.Shapes, shape)
		s.World.Add(shape)
	}
}

// Hit returns the closest hit in the scene
func (s *Scene) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	return s.World.Hit(ray, interval)
}

// BoundingBox returns the bounding box of every shape in the scene
func (s *Scene) BoundingBox() core.AABB {
	return s.World.BoundingBox()
}

// NewGroundQuad creates a large quad to replace infinite ground planes
// Creates a horizontal quad centered at the given point with normal pointing up (0,1,0)
func NewGroundQuad(center core.Vec3, size float64, material material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (size,0,0) × (0,0,size) points along -Y, so swap to face up
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, material)
}
