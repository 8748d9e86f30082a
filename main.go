package main

import (
	"fmt"
	"os"

	"github.com/df07/go-hittables/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	sceneFlag := cli.StringFlag{
		Name:  "scene, s",
		Value: "cornell-smoke",
		Usage: "built-in scene id (see the scenes command)",
	}
	seedFlag := cli.Int64Flag{
		Name:  "seed",
		Value: 42,
		Usage: "seed for the medium sampler",
	}

	app := cli.NewApp()
	app.Name = "go-hittables"
	app.Usage = "probe ray-intersectable scenes with transforms and participating media"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "probe",
			Usage: "fire a grid of rays into a scene and tally what they hit",
			Description: `
Build a scene, fire an NxN grid of rays from its eye point across its field of
view and report hits per material type. Hits inside participating media are
counted separately.`,
			Flags: []cli.Flag{
				sceneFlag,
				cli.IntFlag{
					Name:  "rays, n",
					Value: 64,
					Usage: "rays per side of the probe grid",
				},
				seedFlag,
			},
			Action: cmd.Probe,
		},
		{
			Name:  "extinction",
			Usage: "measure scattering through a slab of constant medium",
			Description: `
Fire rays perpendicular to a slab of constant density medium and compare the
fraction that scatter with 1 - exp(-density * thickness).`,
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "density, d",
					Value: 0.5,
					Usage: "medium density",
				},
				cli.Float64Flag{
					Name:  "thickness, t",
					Value: 2,
					Usage: "slab thickness",
				},
				cli.IntFlag{
					Name:  "trials",
					Value: 100000,
					Usage: "number of rays",
				},
				seedFlag,
			},
			Action: cmd.Extinction,
		},
		{
			Name:   "bounds",
			Usage:  "print the bounding box of every top-level shape in a scene",
			Flags:  []cli.Flag{sceneFlag},
			Action: cmd.Bounds,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
