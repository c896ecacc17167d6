package geometry

import "errors"

var (
	// ErrInvalidRadius is returned when a sphere is constructed with a radius <= 0
	ErrInvalidRadius = errors.New("geometry: sphere radius must be positive")

	// ErrInvalidTimeInterval is returned when a moving sphere has an empty motion interval
	ErrInvalidTimeInterval = errors.New("geometry: moving sphere requires time0 != time1")

	// ErrNilMaterial is returned when a primitive is constructed without a material
	ErrNilMaterial = errors.New("geometry: material must not be nil")
)
