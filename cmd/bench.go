package cmd

import (
	"bytes"
	"context"
	"fmt"
	"runtime"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// benchResult is the outcome of rendering the benchmark frame with a fixed worker count
type benchResult struct {
	workers int
	stats   renderer.RenderStats
}

// Bench renders the same frame with an increasing number of workers and reports the speed-up.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	cache, err := scene.NewCache(4, logger)
	if err != nil {
		return err
	}

	maxWorkers := ctx.Int("max-workers")
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	flags := renderFlags{
		width: ctx.Int("width"),
		spp:   ctx.Int("spp"),
		depth: ctx.Int("depth"),
		seed:  ctx.Int64("seed"),
	}

	results := make([]benchResult, 0)
	for _, workers := range workerCounts(maxWorkers) {
		// Every run reuses the world built for the first one
		sc, err := cache.Get(ctx.String("scene"), flags.seed)
		if err != nil {
			return err
		}

		flags.workers = workers
		opts := resolveOptions(flags, sc)

		logger.Noticef("benchmarking %d worker(s)", workers)
		_, stats, err := renderer.Render(context.Background(), sc, opts, logger)
		if err != nil {
			return err
		}
		results = append(results, benchResult{workers: workers, stats: stats})
	}

	displayBenchResults(results)
	return nil
}

// workerCounts returns 1, 2, 4, ... up to maxWorkers, always ending with maxWorkers
func workerCounts(maxWorkers int) []int {
	counts := []int{}
	for n := 1; n < maxWorkers; n *= 2 {
		counts = append(counts, n)
	}
	return append(counts, maxWorkers)
}

func displayBenchResults(results []benchResult) {
	if len(results) == 0 {
		return
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Workers", "Render time", "Samples/s", "Speed-up"})

	baseline := results[0].stats.Duration
	for _, result := range results {
		speedUp := 0.0
		if result.stats.Duration > 0 {
			speedUp = float64(baseline) / float64(result.stats.Duration)
		}
		table.Append([]string{
			fmt.Sprintf("%d", result.workers),
			result.stats.Duration.String(),
			fmt.Sprintf("%.0f", result.stats.SamplesPerSecond()),
			fmt.Sprintf("%.2fx", speedUp),
		})
	}

	table.Render()
	logger.Noticef("benchmark results\n%s", buf.String())
}
