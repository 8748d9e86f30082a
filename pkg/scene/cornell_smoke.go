package scene

import (
	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/geometry"
	"github.com/df07/go-hittables/pkg/material"
)

// NewCornellSmokeScene creates the Cornell box with its two blocks replaced by
// dark and light smoke. The blocks are rotated and translated boxes used as
// medium boundaries.
func NewCornellSmokeScene(sampler core.Sampler, logger core.Logger) *Scene {
	s := newScene("cornell-smoke", core.NewVec3(278, 278, -800), core.NewVec3(278, 278, 0), 40)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	lamp := material.NewLambertian(core.NewVec3(1, 1, 1))

	// Cornell box dimensions (standard 555x555x555 units)
	boxSize := 555.0

	rightWall := geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)
	leftWall := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red)
	floor := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	ceiling := geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white)
	backWall := geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)

	// Ceiling panel, slightly below the ceiling
	panel := geometry.NewQuad(core.NewVec3(113, boxSize-1, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305), lamp)

	s.Add(rightWall, leftWall, floor, ceiling, backWall, panel)

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallPlaced := geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shortPlaced := geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))

	s.Add(
		geometry.NewConstantMedium(tallPlaced, 0.01, core.NewVec3(0, 0, 0), sampler),
		geometry.NewConstantMedium(shortPlaced, 0.01, core.NewVec3(1, 1, 1), sampler),
	)

	logger.Printf("Built %s scene with %d top-level shapes\n", s.Name, len(s.Shapes))
	return s
}
