package renderer

import "errors"

var (
	// ErrInvalidDimensions is returned when the frame is smaller than 2x2 pixels
	ErrInvalidDimensions = errors.New("renderer: frame width and height must be at least 2")

	// ErrInvalidSampling is returned for non-positive samples per pixel or bounce depth
	ErrInvalidSampling = errors.New("renderer: samples per pixel and max depth must be positive")

	// ErrSceneNotBuilt is returned when the scene has no camera or world to render
	ErrSceneNotBuilt = errors.New("renderer: scene has no camera or world, Build has not been called")

	// ErrWorkerFailed wraps a panic raised inside a render worker
	ErrWorkerFailed = errors.New("renderer: render worker failed")
)
