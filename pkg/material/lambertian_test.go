package material

import (
	"math"
	"testing"

	"github.com/df07/go-hittables/pkg/core"
)

func TestLambertian_PDFCalculation(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	sampler := core.NewSeededSampler(42)

	// Normal pointing up (z-axis)
	normal := core.NewVec3(0, 0, 1)
	hit := HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: normal,
	}
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	for i := 0; i < 100; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}

		cosTheta := scatter.Scattered.Direction.Normalize().Dot(normal)
		expectedPDF := cosTheta / math.Pi
		if math.Abs(scatter.PDF-expectedPDF) > 1e-10 {
			t.Errorf("PDF mismatch: got %f, expected %f", scatter.PDF, expectedPDF)
		}
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewCheckerTexture(1.0, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	lambertian := NewTexturedLambertian(checker)
	sampler := core.NewSeededSampler(3)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	evenHit := HitRecord{Point: core.NewVec3(0.5, 0.5, 0.5), Normal: core.NewVec3(0, 0, 1)}
	oddHit := HitRecord{Point: core.NewVec3(1.5, 0.5, 0.5), Normal: core.NewVec3(0, 0, 1)}

	even, _ := lambertian.Scatter(ray, evenHit, sampler)
	odd, _ := lambertian.Scatter(ray, oddHit, sampler)

	if even.Attenuation.X <= 0 {
		t.Errorf("expected bright attenuation in even cell, got %v", even.Attenuation)
	}
	if odd.Attenuation != (core.Vec3{}) {
		t.Errorf("expected black attenuation in odd cell, got %v", odd.Attenuation)
	}
}
