package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// stubMaterial satisfies core.Material for geometry tests
type stubMaterial struct{}

func (stubMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func mustSphere(t *testing.T, center core.Vec3, radius float64) *Sphere {
	t.Helper()
	sphere, err := NewSphere(center, radius, stubMaterial{})
	if err != nil {
		t.Fatalf("NewSphere: %v", err)
	}
	return sphere
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestNewSphere_Validation(t *testing.T) {
	tests := []struct {
		name     string
		radius   float64
		material core.Material
		wantErr  error
	}{
		{"valid", 1.0, stubMaterial{}, nil},
		{"zero radius", 0, stubMaterial{}, ErrInvalidRadius},
		{"negative radius", -0.5, stubMaterial{}, ErrInvalidRadius},
		{"NaN radius", math.NaN(), stubMaterial{}, ErrInvalidRadius},
		{"nil material", 1.0, nil, ErrNilMaterial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSphere(core.NewVec3(0, 0, 0), tt.radius, tt.material)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected tangent ray to miss, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:           "unnormalized direction",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material == nil {
				t.Error("Expected hit record to reference the sphere material")
			}
		})
	}
}

func TestSphere_Hit_SymmetricRoots(t *testing.T) {
	center := core.NewVec3(1, 2, -5)
	sphere := mustSphere(t, center, 2.0)
	origin := core.NewVec3(1, 2, 5)
	ray := core.NewRay(origin, center.Subtract(origin).Normalize())

	near, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit on near side")
	}
	// Start just past the near root to find the far one
	far, isHit := sphere.Hit(ray, near.T+1e-6, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit on far side")
	}

	closest := 10.0 // distance from origin to center
	if math.Abs((closest-near.T)-(far.T-closest)) > 1e-9 {
		t.Errorf("Expected roots symmetric around t=%f, got %f and %f", closest, near.T, far.T)
	}
	if math.Abs(near.T-8.0) > 1e-9 || math.Abs(far.T-12.0) > 1e-9 {
		t.Errorf("Expected roots 8 and 12, got %f and %f", near.T, far.T)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(0, 0, 0), 1.0)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name       string
		tMin, tMax float64
		expectHit  bool
		expectedT  float64
	}{
		{"tMax before near root", 0.001, 0.5, false, 0},
		{"tMin past far root", 3.5, 1000.0, false, 0},
		{"tMax equal to near root is open", 0.001, 1.0, false, 0},
		{"tMin equal to near root falls to far root", 1.0, 1000.0, true, 3.0},
		{"both roots valid picks near", 0.001, 1000.0, true, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := mustSphere(t, core.NewVec3(1, -2, 3), 0.5)
	box := sphere.BoundingBox(0, 1)

	expected := core.AABB{Min: core.NewVec3(0.5, -2.5, 2.5), Max: core.NewVec3(1.5, -1.5, 3.5)}
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

// boxContains reports whether inner lies entirely inside outer
func boxContains(outer, inner core.AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if inner.Min.Axis(axis) < outer.Min.Axis(axis) || inner.Max.Axis(axis) > outer.Max.Axis(axis) {
			return false
		}
	}
	return true
}
