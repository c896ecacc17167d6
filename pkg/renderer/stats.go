package renderer

import "time"

// WorkerStats describes the work done by one render worker
type WorkerStats struct {
	ID       int           // Worker index, also the offset added to the base seed
	Rows     RowRange      // Internal rows rendered by this worker
	Samples  int           // Camera rays traced
	Duration time.Duration // Wall time spent by this worker
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         []WorkerStats
	Duration        time.Duration // Wall time of the whole render
}

// TotalPixels returns the number of pixels in the frame
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// TotalSamples returns the number of camera rays traced by all workers
func (s RenderStats) TotalSamples() int {
	total := 0
	for _, worker := range s.Workers {
		total += worker.Samples
	}
	return total
}

// SamplesPerSecond returns the overall camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples()) / s.Duration.Seconds()
}

// FramePercent returns the share of the frame rendered by a worker
func (s RenderStats) FramePercent(worker WorkerStats) float64 {
	if s.Height == 0 {
		return 0
	}
	return 100 * float64(worker.Rows.Len()) / float64(s.Height)
}
