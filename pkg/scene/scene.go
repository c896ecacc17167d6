package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Objects        []core.Hittable // Primitives in the scene
	CameraConfig   renderer.CameraConfig
	SamplingConfig SamplingConfig

	camera *renderer.Camera
	bvh    *core.BVHNode // Acceleration structure built by Build
}

// SamplingConfig holds the render settings a scene was designed for
type SamplingConfig struct {
	Width           int // Image width; height follows from the camera aspect ratio
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns the renderer's default frame width, samples and depth
func DefaultSamplingConfig() SamplingConfig {
	defaults := renderer.DefaultOptions()
	return SamplingConfig{
		Width:           defaults.Width,
		SamplesPerPixel: defaults.SamplesPerPixel,
		MaxDepth:        defaults.MaxDepth,
	}
}

// Add appends primitives to the scene
func (s *Scene) Add(objects ...core.Hittable) {
	s.Objects = append(s.Objects, objects...)
}

// Build creates the camera and the BVH over all objects for the camera shutter interval.
// The split axes are drawn from random.
func (s *Scene) Build(random *rand.Rand) error {
	bvh, err := core.NewBVH(s.Objects, s.CameraConfig.Time0, s.CameraConfig.Time1, random)
	if err != nil {
		return fmt.Errorf("build scene %q: %w", s.Name, err)
	}
	s.bvh = bvh
	s.camera = renderer.NewCamera(s.CameraConfig)
	return nil
}

// SetAspectRatio changes the camera aspect ratio, recreating the camera if the scene is built
func (s *Scene) SetAspectRatio(aspectRatio float64) {
	s.CameraConfig.AspectRatio = aspectRatio
	if s.camera != nil {
		s.camera = renderer.NewCamera(s.CameraConfig)
	}
}

// HeightForWidth returns the image height matching the camera aspect ratio
func (s *Scene) HeightForWidth(width int) int {
	if s.CameraConfig.AspectRatio <= 0 {
		return width
	}
	return int(float64(width) / s.CameraConfig.AspectRatio)
}

// GetCamera returns the camera created by Build
func (s *Scene) GetCamera() *renderer.Camera {
	return s.camera
}

// GetWorld returns the BVH created by Build, or nil before Build
func (s *Scene) GetWorld() core.Hittable {
	if !s.IsBuilt() {
		return nil
	}
	return s.bvh
}

// IsBuilt reports whether Build has succeeded
func (s *Scene) IsBuilt() bool {
	return s.bvh != nil
}

// BVHStats returns statistics about the acceleration structure
func (s *Scene) BVHStats() (core.BVHStats, error) {
	if !s.IsBuilt() {
		return core.BVHStats{}, ErrNotBuilt
	}
	return s.bvh.Stats(), nil
}

// GetPrimitiveCount returns the number of primitives in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Objects)
}
