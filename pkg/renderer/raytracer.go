package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Hittable
}

// Raytracer renders a scene into an RGB frame using a pool of row workers.
// The world and camera are shared read-only; every worker owns its sampler.
type Raytracer struct {
	scene      Scene
	options    Options
	integrator integrator.Integrator
	logger     log.Logger
}

// NewRaytracer validates the options and the scene and creates a raytracer using path tracing
func NewRaytracer(scene Scene, options Options, logger log.Logger) (*Raytracer, error) {
	if err := options.Validate(); err != nil {
		return nil, err
	}
	if scene.GetCamera() == nil || scene.GetWorld() == nil {
		return nil, ErrSceneNotBuilt
	}
	return &Raytracer{
		scene:      scene,
		options:    options,
		integrator: integrator.NewPathTracingIntegrator(),
		logger:     logger,
	}, nil
}

// Render renders a scene with the given options. It is a shorthand for NewRaytracer followed by Render.
func Render(ctx context.Context, scene Scene, options Options, logger log.Logger) (*RGBFrame, RenderStats, error) {
	rt, err := NewRaytracer(scene, options, logger)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return rt.Render(ctx)
}

// Render traces the whole frame. Rows are split into contiguous ranges, one per worker, and
// Render returns once every worker has finished. The first worker error (including a recovered
// panic wrapped in ErrWorkerFailed) or context cancellation is returned.
func (rt *Raytracer) Render(ctx context.Context) (*RGBFrame, RenderStats, error) {
	opts := rt.options
	frame := NewRGBFrame(opts.Width, opts.Height)
	ranges := PartitionRows(opts.Height, opts.WorkerCount())

	stats := RenderStats{
		Width:           opts.Width,
		Height:          opts.Height,
		SamplesPerPixel: opts.SamplesPerPixel,
		MaxDepth:        opts.MaxDepth,
		Workers:         make([]WorkerStats, len(ranges)),
	}

	rt.logger.Infof("rendering %dx%d at %d spp (depth %d) with %d workers",
		opts.Width, opts.Height, opts.SamplesPerPixel, opts.MaxDepth, len(ranges))

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for id, rows := range ranges {
		id, rows := id, rows
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("worker %d (rows %d-%d): %v: %w", id, rows.Start, rows.End, r, ErrWorkerFailed)
				}
			}()

			workerStart := time.Now()
			sampler := core.NewSeededSampler(opts.Seed + int64(id))
			samples, err := rt.renderRows(ctx, frame, rows, sampler)

			// Each worker owns its own stats slot
			stats.Workers[id] = WorkerStats{
				ID:       id,
				Rows:     rows,
				Samples:  samples,
				Duration: time.Since(workerStart),
			}
			rt.logger.Debugf("worker %d finished rows %d-%d in %s", id, rows.Start, rows.End, stats.Workers[id].Duration)
			return err
		})
	}

	err := g.Wait()
	stats.Duration = time.Since(start)
	if err != nil {
		return nil, stats, err
	}

	rt.logger.Infof("render finished in %s", stats.Duration)
	return frame, stats, nil
}

// renderRows renders internal rows [rows.Start, rows.End). Internal row j counts from the
// bottom of the image and is stored at frame row height-1-j.
func (rt *Raytracer) renderRows(ctx context.Context, frame *RGBFrame, rows RowRange, sampler core.Sampler) (int, error) {
	opts := rt.options
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	samples := 0

	for j := rows.Start; j < rows.End; j++ {
		if err := ctx.Err(); err != nil {
			return samples, err
		}

		for i := 0; i < opts.Width; i++ {
			colorAccum := core.Vec3{}
			for s := 0; s < opts.SamplesPerPixel; s++ {
				// Jittered normalized coordinates
				u := (float64(i) + sampler.Get1D()) / float64(opts.Width-1)
				v := (float64(j) + sampler.Get1D()) / float64(opts.Height-1)

				ray := camera.GetRay(u, v, sampler)
				colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, world, sampler, opts.MaxDepth))
			}
			samples += opts.SamplesPerPixel

			frame.WriteColor(i, opts.Height-1-j, colorAccum, opts.SamplesPerPixel)
		}
	}

	return samples, nil
}
