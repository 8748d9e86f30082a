package material

import (
	"math"

	"github.com/df07/go-hittables/pkg/core"
)

// isotropicPDF is the density of a uniform direction on the unit sphere
const isotropicPDF = 1.0 / (4.0 * math.Pi)

// Isotropic is the phase function of a participating medium: light is
// scattered uniformly in every direction regardless of the surface normal.
type Isotropic struct {
	Albedo ColorSource
}

// NewIsotropic creates an isotropic phase function with a constant albedo
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function sampling albedo from a texture
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniform direction on the sphere
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.SampleOnUnitSphere(sampler.Get2D())

	return ScatterResult{
		Incoming:    rayIn,
		Scattered:   core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point).Multiply(isotropicPDF),
		PDF:         isotropicPDF,
	}, true
}

// EvaluateBRDF returns the phase function value, which ignores both directions
func (i *Isotropic) EvaluateBRDF(incomingDir, outgoingDir core.Vec3, hit *HitRecord) core.Vec3 {
	return i.Albedo.Evaluate(hit.UV, hit.Point).Multiply(isotropicPDF)
}

// PDF is constant over the sphere
func (i *Isotropic) PDF(incomingDir, outgoingDir, normal core.Vec3) (float64, bool) {
	return isotropicPDF, false
}
