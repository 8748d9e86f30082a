package cmd

import (
	"fmt"

	"github.com/df07/go-hittables/pkg/core"
	"github.com/df07/go-hittables/pkg/log"
	"github.com/df07/go-hittables/pkg/scene"
	"github.com/urfave/cli"
)

// Print the bounding box of every top-level shape in a built-in scene.
func Bounds(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.NewSceneByID(ctx.String("scene"), core.NewSeededSampler(0), log.NewPrinter("scene"))
	if err != nil {
		return fmt.Errorf("bounds: %w", err)
	}

	logger.Noticef("bounding boxes for scene %q\n%s", sc.Name, boundsTable(sc))
	return nil
}

func boundsTable(sc *scene.Scene) string {
	rows := make([][]string, 0, len(sc.Shapes))
	for i, shape := range sc.Shapes {
		box := shape.BoundingBox()
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%T", shape),
			formatVec(box.Min()),
			formatVec(box.Max()),
			axisName(box.LongestAxis()),
		})
	}

	world := sc.BoundingBox()
	return renderTable(
		[]string{"#", "Shape", "Min", "Max", "Longest axis"},
		rows,
		[]string{"", "SCENE", formatVec(world.Min()), formatVec(world.Max()), axisName(world.LongestAxis())},
	)
}

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	rows := make([][]string, 0)
	for _, info := range scene.ListScenes() {
		rows = append(rows, []string{info.ID, info.DisplayName, info.Description})
	}
	logger.Noticef("built-in scenes\n%s", renderTable([]string{"ID", "Name", "Description"}, rows, nil))
	return nil
}
