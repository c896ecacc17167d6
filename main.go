package main

import (
	"os"

	"github.com/df07/go-sphere-pathtracer/cmd"
	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "go-sphere-pathtracer"
	app.Usage = "render sphere scenes using path tracing"
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
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Build the BVH for a built-in scene or a JSON scene file, path trace the frame
with one worker per row range and write it to the output directory using a
timestamped filename.

Frame size, samples per pixel and max depth default to the scene's own settings.
When only the width is given the height follows the camera aspect ratio.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "final",
					Usage: "name of a built-in scene",
				},
				cli.StringFlag{
					Name:  "scene-file",
					Usage: "JSON scene description; overrides --scene",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (0 uses the scene default)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (0 derives it from the aspect ratio)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 uses the scene default)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "max ray bounces (0 uses the scene default)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 uses one per CPU)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed for scene generation and sampling",
				},
				cli.StringFlag{
					Name:  "out-dir, o",
					Value: "outputs",
					Usage: "directory for rendered frames",
				},
				cli.StringFlag{
					Name:  "format, f",
					Value: "png",
					Usage: "image format: png, jpeg, bmp or tiff",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:        "bench",
			Usage:       "measure render speed-up across worker counts",
			Description: `Render the same cached scene with 1, 2, 4, ... workers and print the timings.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "final",
					Usage: "name of a built-in scene",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 10,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 50,
					Usage: "max ray bounces",
				},
				cli.IntFlag{
					Name:  "max-workers",
					Usage: "largest worker count to try (0 uses one per CPU)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "random seed for scene generation and sampling",
				},
			},
			Action: cmd.Bench,
		},
		{
			Name:  "list-scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory searched for JSON scene files",
				},
			},
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.New("pathtracer").Error(err)
		os.Exit(1)
	}
}
