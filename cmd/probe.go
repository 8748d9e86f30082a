package cmd

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/log"
	"github.com/df07/go-hittables/pkg/material"
	"github.com/df07/go-hittables/pkg/scene"
	"github.com/urfave/cli"
)

// Probe rays ignore hits closer than this to avoid self-intersection at the eye
const probeMinT = 0.001

// ProbeConfig controls a probe run.
type ProbeConfig struct {
	Scene string
	Rays  int   // Rays per side of the square grid
	Seed  int64 // Seed for the medium sampler
}

// ProbeStats summarizes a probe run.
type ProbeStats struct {
	Rays          int
	Misses        int
	ByMaterial    map[string]int // Hit counts keyed by material type
	VolumeHits    int            // Hits that scattered inside a medium
	OutsideBounds int            // Hits whose ray missed the scene bounding box
	MeanDistance  float64        // Mean hit distance over all hits
}

// Hits returns the number of rays that hit something.
func (s ProbeStats) Hits() int {
	return s.Rays - s.Misses
}

// Fire a grid of rays into a built-in scene and report what they hit.
func Probe(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg := ProbeConfig{
		Scene: ctx.String("scene"),
		Rays:  ctx.Int("rays"),
		Seed:  ctx.Int64("seed"),
	}
	if cfg.Rays <= 0 {
		return fmt.Errorf("rays must be positive, got %d", cfg.Rays)
	}

	stats, err := RunProbe(cfg)
	if err != nil {
		return err
	}

	displayProbeStats(cfg, stats)
	return nil
}

// RunProbe builds the configured scene and fires a Rays×Rays grid through it.
func RunProbe(cfg ProbeConfig) (ProbeStats, error) {
	sampler := core.NewSeededSampler(cfg.Seed)
	sc, err := scene.NewSceneByID(cfg.Scene, sampler, log.NewPrinter("scene"))
	if err != nil {
		return ProbeStats{}, fmt.Errorf("probe: %w", err)
	}

	stats := ProbeStats{ByMaterial: make(map[string]int)}
	bounds := sc.BoundingBox()
	interval := core.NewInterval(probeMinT, math.Inf(1))
	totalDistance := 0.0

	for _, ray := range probeRays(sc, cfg.Rays) {
		stats.Rays++

		hit, ok := sc.Hit(ray, interval)
		if !ok {
			stats.Misses++
			continue
		}

		stats.ByMaterial[fmt.Sprintf("%T", hit.Material)]++
		if _, isVolume := hit.Material.(*material.Isotropic); isVolume {
			stats.VolumeHits++
		}
		if !bounds.Hit(ray, interval) {
			stats.OutsideBounds++
		}
		totalDistance += hit.T * ray.Direction.Length()
	}

	if hits := stats.Hits(); hits > 0 {
		stats.MeanDistance = totalDistance / float64(hits)
	}

	logger.Infof("probed scene %q with %d rays", sc.Name, stats.Rays)
	return stats, nil
}

// probeRays returns an n×n grid of rays from the scene eye spanning its field of view.
func probeRays(sc *scene.Scene, n int) []core.Ray {
	w := sc.Eye.Subtract(sc.LookAt).Normalize()
	u := core.NewVec3(0, 1, 0).Cross(w).Normalize()
	v := w.Cross(u)
	halfHeight := math.Tan(core.DegreesToRadians(sc.VFov) / 2)

	rays := make([]core.Ray, 0, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			s := (2*(float64(i)+0.5)/float64(n) - 1) * halfHeight
			t := (1 - 2*(float64(j)+0.5)/float64(n)) * halfHeight
			direction := w.Negate().Add(u.Multiply(s)).Add(v.Multiply(t)).Normalize()
			rays = append(rays, core.NewRay(sc.Eye, direction))
		}
	}
	return rays
}

func displayProbeStats(cfg ProbeConfig, stats ProbeStats) {
	names := make([]string, 0, len(stats.ByMaterial))
	for name := range stats.ByMaterial {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names)+1)
	for _, name := range names {
		count := stats.ByMaterial[name]
		rows = append(rows, []string{name, fmt.Sprintf("%d", count), formatPercent(count, stats.Rays)})
	}
	rows = append(rows, []string{"(miss)", fmt.Sprintf("%d", stats.Misses), formatPercent(stats.Misses, stats.Rays)})

	table := renderTable(
		[]string{"Material", "Rays", "% of rays"},
		rows,
		[]string{"TOTAL", fmt.Sprintf("%d", stats.Rays), fmt.Sprintf("mean t %.3f", stats.MeanDistance)},
	)
	logger.Noticef("probe results for scene %q (%d volume scatters)\n%s", cfg.Scene, stats.VolumeHits, table)

	if stats.OutsideBounds > 0 {
		logger.Warningf("%d hits lie on rays that miss the scene bounding box", stats.OutsideBounds)
	}
}
