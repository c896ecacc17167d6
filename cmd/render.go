package cmd

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/output"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// renderFlags holds the command line overrides for a render. Zero values fall back to
// the scene's own settings.
type renderFlags struct {
	width   int
	height  int
	spp     int
	depth   int
	workers int
	seed    int64
}

// Render a still frame and save it to the output directory.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	format, err := output.ParseFormat(ctx.String("format"))
	if err != nil {
		return err
	}

	// Fail before rendering if the frame cannot be saved
	outDir := ctx.String("out-dir")
	if err := output.PrepareDir(outDir); err != nil {
		return err
	}

	flags := renderFlags{
		width:   ctx.Int("width"),
		height:  ctx.Int("height"),
		spp:     ctx.Int("spp"),
		depth:   ctx.Int("depth"),
		workers: ctx.Int("workers"),
		seed:    ctx.Int64("seed"),
	}

	random := rand.New(rand.NewSource(flags.seed))
	sc, err := loadScene(ctx.String("scene"), ctx.String("scene-file"), random)
	if err != nil {
		return err
	}

	opts := resolveOptions(flags, sc)
	if err := opts.Validate(); err != nil {
		return err
	}

	logger.Noticef("building scene %q (%d primitives)", sc.Name, sc.GetPrimitiveCount())
	start := time.Now()
	if err := sc.Build(random); err != nil {
		return err
	}
	if stats, err := sc.BVHStats(); err == nil {
		logger.Infof("BVH built in %s: %d nodes, %d primitives, max depth %d",
			time.Since(start), stats.Nodes, stats.Primitives, stats.MaxDepth)
	}

	// Ctrl-C stops the workers at the next row
	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("rendering %dx%d, %d spp, depth %d", opts.Width, opts.Height, opts.SamplesPerPixel, opts.MaxDepth)
	frame, stats, err := renderer.Render(runCtx, sc, opts, logger)
	if err != nil {
		return err
	}

	displayFrameStats(stats)

	path, err := output.Save(outDir, frame, format, time.Now())
	if err != nil {
		return err
	}
	logger.Noticef("frame saved to %s", path)
	return nil
}

// loadScene creates an unbuilt scene from a JSON file when sceneFile is set, otherwise from the registry
func loadScene(sceneName, sceneFile string, random *rand.Rand) (*scene.Scene, error) {
	if sceneFile != "" {
		return scene.LoadFile(sceneFile)
	}
	return scene.New(sceneName, random)
}

// resolveOptions merges the command line flags with the scene defaults. When both width
// and height are given the camera aspect ratio is adjusted to match them.
func resolveOptions(flags renderFlags, sc *scene.Scene) renderer.Options {
	opts := renderer.Options{
		Width:           flags.width,
		Height:          flags.height,
		SamplesPerPixel: flags.spp,
		MaxDepth:        flags.depth,
		Workers:         flags.workers,
		Seed:            flags.seed,
	}

	if opts.Width <= 0 {
		opts.Width = sc.SamplingConfig.Width
	}
	if opts.Height <= 0 {
		opts.Height = sc.HeightForWidth(opts.Width)
	} else {
		sc.SetAspectRatio(float64(opts.Width) / float64(opts.Height))
	}
	if opts.SamplesPerPixel <= 0 {
		opts.SamplesPerPixel = sc.SamplingConfig.SamplesPerPixel
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = sc.SamplingConfig.MaxDepth
	}

	return opts
}

func displayFrameStats(stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Worker", "Rows", "% of frame", "Samples", "Render time"})
	for _, worker := range stats.Workers {
		table.Append([]string{
			fmt.Sprintf("%d", worker.ID),
			fmt.Sprintf("%d-%d", worker.Rows.Start, worker.Rows.End-1),
			fmt.Sprintf("%02.1f %%", stats.FramePercent(worker)),
			fmt.Sprintf("%d", worker.Samples),
			worker.Duration.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", fmt.Sprintf("%d", stats.TotalSamples()), stats.Duration.String()})

	table.Render()
	logger.Noticef("frame statistics (%d pixels, %.0f samples/s)\n%s", stats.TotalPixels(), stats.SamplesPerSecond(), buf.String())
}
