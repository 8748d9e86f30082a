package scene

import (
	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/geometry"
	"github.com/df07/go-hittables/pkg/material"
)

// NewFogSpheresScene creates spheres and a pyramid on a checkered ground,
// all inside a thin textured fog bank, with one dense blue sphere of haze
func NewFogSpheresScene(sampler core.Sampler, logger core.Logger) *Scene {
	s := newScene("fog-spheres", core.NewVec3(0, 2, -10), core.NewVec3(0, 1, 0), 30)

	checker := material.NewCheckerTexture(1.0, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := material.NewTexturedLambertian(checker)
	orange := material.NewLambertian(core.NewVec3(0.8, 0.4, 0.1))
	grey := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 40, ground))

	// Solid sphere to the left, hazy sphere on the right
	s.Add(geometry.NewSphere(core.NewVec3(-2, 1, 0), 1, orange))
	haze := geometry.NewSphere(core.NewVec3(2, 1, 0), 1, grey)
	s.Add(geometry.NewConstantMedium(haze, 1.5, core.NewVec3(0.2, 0.4, 0.9), sampler))

	// Square pyramid built from four triangles, turned 30 degrees and moved back
	apex := core.NewVec3(0, 1.5, 0)
	base := []core.Vec3{
		core.NewVec3(-1, 0, -1),
		core.NewVec3(1, 0, -1),
		core.NewVec3(1, 0, 1),
		core.NewVec3(-1, 0, 1),
	}
	pyramid := geometry.NewShapeList()
	for i := range base {
		pyramid.Add(geometry.NewTriangle(base[i], base[(i+1)%len(base)], apex, grey))
	}
	s.Add(geometry.NewTranslate(geometry.NewRotateY(pyramid, 30), core.NewVec3(0, 0, 3)))

	// Thin fog over the whole set
	bank := geometry.NewBox(core.NewVec3(-20, 0, -20), core.NewVec3(20, 6, 20), nil)
	fogColor := material.NewCheckerTexture(4.0, core.NewVec3(1, 1, 1), core.NewVec3(0.8, 0.8, 0.9))
	s.Add(geometry.NewTexturedConstantMedium(bank, 0.005, fogColor, sampler))

	logger.Printf("Built %s scene with %d top-level shapes\n", s.Name, len(s.Shapes))
	return s
}
