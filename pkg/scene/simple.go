package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// NewThreeSpheresScene creates a diffuse, a glass and a fuzzy metal sphere on a large ground sphere
func NewThreeSpheresScene(random *rand.Rand) (*Scene, error) {
	s := &Scene{
		Name: "three-spheres",
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(-2, 2, 1),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        30,
			AspectRatio: 16.0 / 9.0,
			Aperture:    0.0,
		},
		SamplingConfig: SamplingConfig{
			Width:           800,
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	spheres := []struct {
		center core.Vec3
		radius float64
		mat    core.Material
	}{
		{core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))},
		{core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))},
		{core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)},
		{core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)},
	}
	for _, sp := range spheres {
		sphere, err := geometry.NewSphere(sp.center, sp.radius, sp.mat)
		if err != nil {
			return nil, err
		}
		s.Add(sphere)
	}

	return s, nil
}

// NewSingleSphereScene creates one diffuse sphere straight ahead of a camera looking down -z
func NewSingleSphereScene(random *rand.Rand) (*Scene, error) {
	s := &Scene{
		Name: "single-sphere",
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        90,
			AspectRatio: 16.0 / 9.0,
		},
		SamplingConfig: SamplingConfig{
			Width:           400,
			SamplesPerPixel: 50,
			MaxDepth:        50,
		},
	}

	sphere, err := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	if err != nil {
		return nil, err
	}
	s.Add(sphere)

	return s, nil
}
