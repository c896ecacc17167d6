package integrator

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor returns the radiance arriving along ray from world, following at most depth bounces
	RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler, depth int) core.Vec3
}
