package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// File is the JSON representation of a scene
type File struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Camera      CameraFile     `json:"camera"`
	Sampling    *SamplingFile  `json:"sampling,omitempty"`
	Materials   []MaterialFile `json:"materials,omitempty"`
	Spheres     []SphereFile   `json:"spheres"`
}

// CameraFile describes the camera of a scene file
type CameraFile struct {
	LookFrom      [3]float64  `json:"lookFrom"`
	LookAt        [3]float64  `json:"lookAt"`
	Up            *[3]float64 `json:"up,omitempty"` // defaults to +Y
	VFov          float64     `json:"vfov"`
	AspectRatio   float64     `json:"aspectRatio,omitempty"` // defaults to 16:9
	Aperture      float64     `json:"aperture,omitempty"`
	FocusDistance float64     `json:"focusDistance,omitempty"`
	Time0         float64     `json:"time0,omitempty"`
	Time1         float64     `json:"time1,omitempty"`
}

// SamplingFile overrides the default render settings
type SamplingFile struct {
	Width           int `json:"width,omitempty"`
	SamplesPerPixel int `json:"spp,omitempty"`
	MaxDepth        int `json:"depth,omitempty"`
}

// MaterialFile describes a material. Named materials can be shared by several spheres.
type MaterialFile struct {
	Name   string     `json:"name,omitempty"`
	Type   string     `json:"type"` // lambertian, metal or dielectric
	Albedo [3]float64 `json:"albedo,omitempty"`
	Fuzz   float64    `json:"fuzz,omitempty"`
	IOR    float64    `json:"ior,omitempty"` // defaults to 1.5
}

// SphereFile describes a static or moving sphere. A sphere moves when Center1 is set.
type SphereFile struct {
	Center   [3]float64    `json:"center"`
	Center1  *[3]float64   `json:"center1,omitempty"`
	Time0    float64       `json:"time0,omitempty"`
	Time1    *float64      `json:"time1,omitempty"` // defaults to 1 for moving spheres
	Radius   float64       `json:"radius"`
	Material *MaterialFile `json:"material,omitempty"`
	Ref      string        `json:"materialRef,omitempty"` // name of an entry in Materials
}

// LoadFile reads a JSON scene from path
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Load decodes a JSON scene and creates its primitives. The scene still needs Build.
func Load(r io.Reader) (*Scene, error) {
	var file File
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return file.toScene()
}

func (f *File) toScene() (*Scene, error) {
	if err := f.Camera.validate(); err != nil {
		return nil, err
	}

	s := &Scene{
		Name:           f.Name,
		CameraConfig:   f.Camera.toConfig(),
		SamplingConfig: DefaultSamplingConfig(),
	}
	if f.Sampling != nil {
		if f.Sampling.Width > 0 {
			s.SamplingConfig.Width = f.Sampling.Width
		}
		if f.Sampling.SamplesPerPixel > 0 {
			s.SamplingConfig.SamplesPerPixel = f.Sampling.SamplesPerPixel
		}
		if f.Sampling.MaxDepth > 0 {
			s.SamplingConfig.MaxDepth = f.Sampling.MaxDepth
		}
	}

	named := make(map[string]core.Material, len(f.Materials))
	for i, m := range f.Materials {
		mat, err := m.toMaterial()
		if err != nil {
			return nil, fmt.Errorf("material %d: %w", i, err)
		}
		named[m.Name] = mat
	}

	for i, sp := range f.Spheres {
		var mat core.Material
		switch {
		case sp.Material != nil:
			m, err := sp.Material.toMaterial()
			if err != nil {
				return nil, fmt.Errorf("sphere %d: %w", i, err)
			}
			mat = m
		case sp.Ref != "":
			m, ok := named[sp.Ref]
			if !ok {
				return nil, fmt.Errorf("sphere %d: material %q is not defined", i, sp.Ref)
			}
			mat = m
		}

		sphere, err := sp.toHittable(mat)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.Add(sphere)
	}

	return s, nil
}

// validate rejects cameras that cannot form a viewport
func (c CameraFile) validate() error {
	if !(c.VFov > 0 && c.VFov < 180) {
		return fmt.Errorf("camera vfov %v must be between 0 and 180 degrees: %w", c.VFov, ErrInvalidCamera)
	}

	view := vec(c.LookFrom).Subtract(vec(c.LookAt))
	if view.LengthSquared() == 0 {
		return fmt.Errorf("camera lookFrom and lookAt are both %v: %w", c.LookFrom, ErrInvalidCamera)
	}

	if c.Up != nil && vec(*c.Up).Cross(view).LengthSquared() == 0 {
		return fmt.Errorf("camera up %v is parallel to the view direction: %w", *c.Up, ErrInvalidCamera)
	}
	return nil
}

func (c CameraFile) toConfig() renderer.CameraConfig {
	up := core.NewVec3(0, 1, 0)
	if c.Up != nil {
		up = vec(*c.Up)
	}
	aspectRatio := c.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 16.0 / 9.0
	}
	return renderer.CameraConfig{
		LookFrom:      vec(c.LookFrom),
		LookAt:        vec(c.LookAt),
		Up:            up,
		VFov:          c.VFov,
		AspectRatio:   aspectRatio,
		Aperture:      c.Aperture,
		FocusDistance: c.FocusDistance,
		Time0:         c.Time0,
		Time1:         c.Time1,
	}
}

func (m MaterialFile) toMaterial() (core.Material, error) {
	switch strings.ToLower(m.Type) {
	case "lambertian":
		return material.NewLambertian(vec(m.Albedo)), nil
	case "metal":
		return material.NewMetal(vec(m.Albedo), m.Fuzz), nil
	case "dielectric":
		ior := m.IOR
		if ior <= 0 {
			ior = 1.5
		}
		return material.NewDielectric(ior), nil
	}
	return nil, fmt.Errorf("%q: %w", m.Type, ErrUnknownMaterial)
}

func (sp SphereFile) toHittable(mat core.Material) (core.Hittable, error) {
	if sp.Center1 == nil {
		return geometry.NewSphere(vec(sp.Center), sp.Radius, mat)
	}
	time1 := 1.0
	if sp.Time1 != nil {
		time1 = *sp.Time1
	}
	return geometry.NewMovingSphere(vec(sp.Center), vec(*sp.Center1), sp.Time0, time1, sp.Radius, mat)
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
