package geometry

import (
	"fmt"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0 to Center1 at Time1.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a moving sphere. time0 and time1 must differ.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) (*MovingSphere, error) {
	if err := validateSphere(radius, material); err != nil {
		return nil, err
	}
	if time0 == time1 {
		return nil, fmt.Errorf("time interval [%v, %v]: %w", time0, time1, ErrInvalidTimeInterval)
	}
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}, nil
}

// Center returns the center at the given time. Times outside [Time0, Time1] extrapolate
// along the same line; they are not clamped.
func (s *MovingSphere) Center(time float64) core.Vec3 {
	fraction := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(fraction))
}

// Hit intersects the ray with the sphere positioned at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return hitSphere(ray, s.Center(ray.Time), s.Radius, s.Material, tMin, tMax)
}

// BoundingBox returns the union of the boxes at time0 and time1, which encloses the whole sweep
func (s *MovingSphere) BoundingBox(time0, time1 float64) core.AABB {
	return core.SurroundingBox(
		sphereBox(s.Center(time0), s.Radius),
		sphereBox(s.Center(time1), s.Radius),
	)
}
