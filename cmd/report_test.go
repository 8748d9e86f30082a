package cmd

import (
	"strings"
	"testing"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/log"
	"github.com/df07/go-hittables/pkg/scene"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"Name", "Count"},
		[][]string{{"alpha", "1"}, {"beta", "22"}},
		[]string{"TOTAL", "23"},
	)

	for _, want := range []string{"Name", "Count", "alpha", "beta", "22", "TOTAL", "23"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected table to contain %q:\n%s", want, out)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		count, total int
		expected     string
	}{
		{0, 0, "0.0 %"},
		{1, 4, "25.0 %"},
		{3, 3, "100.0 %"},
	}

	for _, tt := range tests {
		if got := formatPercent(tt.count, tt.total); got != tt.expected {
			t.Errorf("formatPercent(%d, %d) = %q, expected %q", tt.count, tt.total, got, tt.expected)
		}
	}
}

func TestAxisName(t *testing.T) {
	for axis, expected := range map[int]string{0: "X", 1: "Y", 2: "Z", 7: "Z"} {
		if got := axisName(axis); got != expected {
			t.Errorf("axisName(%d) = %q, expected %q", axis, got, expected)
		}
	}
}

func TestFormatVec(t *testing.T) {
	if got := formatVec(core.NewVec3(1, -2.5, 0)); got != "(1, -2.5, 0)" {
		t.Errorf("unexpected format %q", got)
	}
}

func TestBoundsTable(t *testing.T) {
	sc, err := scene.NewSceneByID("cornell-smoke", core.NewSeededSampler(0), log.NewPrinter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := boundsTable(sc)
	for _, want := range []string{"SCENE", "*geometry.Quad", "*geometry.ConstantMedium"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected bounds table to contain %q:\n%s", want, out)
		}
	}
}
