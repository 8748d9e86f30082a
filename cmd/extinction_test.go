package cmd

import (
	"math"
	"testing"
)

func TestRunExtinction_MatchesBeerLambert(t *testing.T) {
	tests := []struct {
		name      string
		density   float64
		thickness float64
	}{
		{"thin", 0.2, 1},
		{"unit optical depth", 1, 1},
		{"thick", 0.5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := RunExtinction(ExtinctionConfig{
				Density:   tt.density,
				Thickness: tt.thickness,
				Trials:    20000,
				Seed:      42,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			expected := 1 - math.Exp(-tt.density*tt.thickness)
			if math.Abs(result.Expected-expected) > 1e-12 {
				t.Errorf("expected theory %g, got %g", expected, result.Expected)
			}
			if math.Abs(result.Fraction-expected) > 0.02 {
				t.Errorf("scatter fraction %g too far from %g", result.Fraction, expected)
			}
			if result.MeanDepth <= 0 || result.MeanDepth >= tt.thickness {
				t.Errorf("mean depth %g outside slab [0, %g]", result.MeanDepth, tt.thickness)
			}
			if math.Abs(result.MeanDepth-result.ExpectedDepth) > 0.05*tt.thickness {
				t.Errorf("mean depth %g too far from %g", result.MeanDepth, result.ExpectedDepth)
			}
		})
	}
}

func TestRunExtinction_Deterministic(t *testing.T) {
	cfg := ExtinctionConfig{Density: 0.7, Thickness: 2, Trials: 500, Seed: 9}

	first, err := RunExtinction(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := RunExtinction(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("expected identical results for the same seed, got %+v and %+v", first, second)
	}
}

func TestRunExtinction_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  ExtinctionConfig
	}{
		{"zero density", ExtinctionConfig{Density: 0, Thickness: 1, Trials: 10}},
		{"negative thickness", ExtinctionConfig{Density: 1, Thickness: -1, Trials: 10}},
		{"no trials", ExtinctionConfig{Density: 1, Thickness: 1, Trials: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RunExtinction(tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
