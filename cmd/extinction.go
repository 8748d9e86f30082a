package cmd

import (
	"fmt"
	"math"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/geometry"
	"github.com/urfave/cli"
)

// Half-width of the slab in X and Y; wide enough that no trial ray leaves through a side
const slabHalfWidth = 100.0

// ExtinctionConfig controls an extinction run.
type ExtinctionConfig struct {
	Density   float64
	Thickness float64
	Trials    int
	Seed      int64
}

// ExtinctionResult compares measured scattering in a slab against Beer-Lambert.
type ExtinctionResult struct {
	Trials        int
	Scattered     int
	Fraction      float64 // Scattered / Trials
	Expected      float64 // 1 - exp(-Density·Thickness)
	MeanDepth     float64 // Mean scatter depth below the slab surface
	ExpectedDepth float64 // Mean of the exponential truncated to the slab
}

// Fire rays through a slab of constant medium and compare the scatter fraction with theory.
func Extinction(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg := ExtinctionConfig{
		Density:   ctx.Float64("density"),
		Thickness: ctx.Float64("thickness"),
		Trials:    ctx.Int("trials"),
		Seed:      ctx.Int64("seed"),
	}

	result, err := RunExtinction(cfg)
	if err != nil {
		return err
	}

	displayExtinctionResult(cfg, result)
	return nil
}

// RunExtinction fires cfg.Trials perpendicular rays through a slab medium.
func RunExtinction(cfg ExtinctionConfig) (ExtinctionResult, error) {
	if cfg.Density <= 0 || cfg.Thickness <= 0 {
		return ExtinctionResult{}, fmt.Errorf("density and thickness must be positive, got %g and %g", cfg.Density, cfg.Thickness)
	}
	if cfg.Trials <= 0 {
		return ExtinctionResult{}, fmt.Errorf("trials must be positive, got %d", cfg.Trials)
	}

	sampler := core.NewSeededSampler(cfg.Seed)
	slab := geometry.NewBox(
		core.NewVec3(-slabHalfWidth, -slabHalfWidth, 0),
		core.NewVec3(slabHalfWidth, slabHalfWidth, cfg.Thickness),
		nil,
	)
	medium := geometry.NewConstantMedium(slab, cfg.Density, core.NewVec3(0.5, 0.5, 0.5), sampler)
	interval := core.NewInterval(0, math.Inf(1))

	result := ExtinctionResult{Trials: cfg.Trials}
	totalDepth := 0.0
	for i := 0; i < cfg.Trials; i++ {
		// Spread the entry points so the boundary is hit at different places
		offset := sampler.Get2D()
		origin := core.NewVec3(offset.X*2-1, offset.Y*2-1, -1)
		ray := core.NewRay(origin, core.NewVec3(0, 0, 1))

		hit, ok := medium.Hit(ray, interval)
		if !ok {
			continue
		}
		result.Scattered++
		totalDepth += hit.Point.Z
	}

	result.Fraction = float64(result.Scattered) / float64(cfg.Trials)
	if result.Scattered > 0 {
		result.MeanDepth = totalDepth / float64(result.Scattered)
	}

	opticalDepth := cfg.Density * cfg.Thickness
	result.Expected = -math.Expm1(-opticalDepth)
	result.ExpectedDepth = 1/cfg.Density - cfg.Thickness*math.Exp(-opticalDepth)/result.Expected

	logger.Infof("extinction: %d of %d rays scattered", result.Scattered, result.Trials)
	return result, nil
}

func displayExtinctionResult(cfg ExtinctionConfig, result ExtinctionResult) {
	table := renderTable(
		[]string{"Quantity", "Measured", "Expected"},
		[][]string{
			{"scatter fraction", fmt.Sprintf("%.4f", result.Fraction), fmt.Sprintf("%.4f", result.Expected)},
			{"mean depth", fmt.Sprintf("%.4f", result.MeanDepth), fmt.Sprintf("%.4f", result.ExpectedDepth)},
		},
		nil,
	)
	logger.Noticef("extinction through slab (density %g, thickness %g, %d trials)\n%s",
		cfg.Density, cfg.Thickness, cfg.Trials, table)
}
