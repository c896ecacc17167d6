package scene

import (
	"errors"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

var (
	// ErrUnknownScene is returned for names missing from the scene registry
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrUnknownMaterial is returned when a scene file names an unsupported material type
	ErrUnknownMaterial = errors.New("scene: unknown material type")

	// ErrInvalidCamera is returned when a scene file describes a degenerate camera
	ErrInvalidCamera = errors.New("scene: invalid camera")

	// ErrNotBuilt is returned when a scene is queried or rendered before Build
	ErrNotBuilt = renderer.ErrSceneNotBuilt
)
