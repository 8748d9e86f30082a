package geometry

import (
	"math"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/material"
)

// exitEpsilon keeps the exit query from finding the entry surface again
const exitEpsilon = 1e-4

// ConstantMedium is a homogeneous participating medium filling a boundary
// shape. A ray crossing the boundary scatters at an exponentially distributed
// depth, or passes straight through.
//
// The boundary should be closed and convex: only the first entry/exit pair
// along the ray is considered.
type ConstantMedium struct {
	Boundary      Shape
	Density       float64
	PhaseFunction material.Material
	sampler       core.Sampler
}

// NewConstantMedium creates a medium with a constant albedo. sampler is
// shared with the caller and must not be used concurrently.
func NewConstantMedium(boundary Shape, density float64, albedo core.Vec3, sampler core.Sampler) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(albedo),
		sampler:       sampler,
	}
}

// NewTexturedConstantMedium creates a medium whose albedo comes from a texture
func NewTexturedConstantMedium(boundary Shape, density float64, texture material.ColorSource, sampler core.Sampler) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(texture),
		sampler:       sampler,
	}
}

// Hit finds where the ray enters and leaves the boundary, then samples a
// free path to decide whether it scatters inside.
func (m *ConstantMedium) Hit(ray core.Ray, interval core.Interval) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.UniverseInterval)
	if !ok {
		return nil, false
	}

	exit, ok := m.Boundary.Hit(ray, core.NewInterval(entry.T+exitEpsilon, math.Inf(1)))
	if !ok {
		return nil, false
	}

	tEntry, tExit := entry.T, exit.T
	if tEntry < interval.Min {
		tEntry = interval.Min
	}
	if tExit > interval.Max {
		tExit = interval.Max
	}

	if tEntry >= tExit {
		return nil, false
	}

	// The origin may already be inside the medium
	if tEntry < 0 {
		tEntry = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (tExit - tEntry) * rayLength

	// 1 - [0,1) keeps U in (0,1] so the log stays finite
	hitDistance := core.SampleExponential(m.Density, 1-m.sampler.Get1D())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := tEntry + hitDistance/rayLength

	// Volume scattering has no surface normal; the record carries a fixed
	// placeholder that the isotropic phase function ignores.
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's bounding box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
