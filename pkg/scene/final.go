package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// NewFinalScene creates the random sphere field: a huge ground sphere, a 20x20 grid of small
// spheres with random materials (mostly moving diffuse ones) and three large feature spheres.
func NewFinalScene(random *rand.Rand) (*Scene, error) {
	s := &Scene{
		Name: "final",
		CameraConfig: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			AspectRatio:   16.0 / 9.0,
			Aperture:      0.1,
			FocusDistance: 10,
			Time0:         0,
			Time1:         1,
		},
		SamplingConfig: DefaultSamplingConfig(),
	}

	ground, err := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	if err != nil {
		return nil, err
	}
	s.Add(ground)

	// Keep the grid clear of the large metal sphere
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -10; a < 10; a++ {
		for b := -10; b < 10; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var sphere core.Hittable
			switch {
			case chooseMaterial < 0.8:
				// Diffuse, bouncing upwards during the shutter interval
				albedo := randomColor(random, 0, 1).MultiplyVec(randomColor(random, 0, 1))
				center1 := center.Add(core.NewVec3(0, randomRange(random, 0, 0.5), 0))
				sphere, err = geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo))
			case chooseMaterial < 0.95:
				albedo := randomColor(random, 0.5, 1)
				fuzz := randomRange(random, 0, 0.5)
				sphere, err = geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz))
			default:
				sphere, err = geometry.NewSphere(center, 0.2, material.NewDielectric(1.5))
			}
			if err != nil {
				return nil, err
			}
			s.Add(sphere)
		}
	}

	feature := []struct {
		center core.Vec3
		mat    core.Material
	}{
		{core.NewVec3(0, 1, 0), material.NewDielectric(1.5)},
		{core.NewVec3(-4, 1, 0), material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))},
		{core.NewVec3(4, 1, 0), material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)},
	}
	for _, f := range feature {
		sphere, err := geometry.NewSphere(f.center, 1.0, f.mat)
		if err != nil {
			return nil, err
		}
		s.Add(sphere)
	}

	return s, nil
}

func randomRange(random *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*random.Float64()
}

func randomColor(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(randomRange(random, lo, hi), randomRange(random, lo, hi), randomRange(random, lo, hi))
}
