package renderer

import (
	"fmt"
	"runtime"
)

// Options contains rendering configuration
type Options struct {
	Width           int   // Frame width in pixels
	Height          int   // Frame height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Workers         int   // Number of render goroutines; 0 selects runtime.NumCPU()
	Seed            int64 // Base seed; worker i samples with Seed+i
}

// DefaultOptions returns the settings of the final render
func DefaultOptions() Options {
	return Options{
		Width:           1920,
		Height:          1080,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Workers:         0,
		Seed:            42,
	}
}

// Validate checks the options for values that cannot produce an image
func (o Options) Validate() error {
	// Pixel coordinates are normalized by (width-1) and (height-1)
	if o.Width < 2 || o.Height < 2 {
		return fmt.Errorf("%dx%d: %w", o.Width, o.Height, ErrInvalidDimensions)
	}
	if o.SamplesPerPixel <= 0 || o.MaxDepth <= 0 {
		return fmt.Errorf("spp=%d depth=%d: %w", o.SamplesPerPixel, o.MaxDepth, ErrInvalidSampling)
	}
	return nil
}

// WorkerCount resolves the number of workers, defaulting to the CPU count and never
// exceeding the number of rows.
func (o Options) WorkerCount() int {
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > o.Height {
		workers = o.Height
	}
	return workers
}
