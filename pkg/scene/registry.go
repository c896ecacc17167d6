package scene

import (
	"fmt"
	"math/rand"
)

// Builder creates an unbuilt scene, drawing any randomness from random
type Builder func(random *rand.Rand) (*Scene, error)

type registration struct {
	info    SceneInfo
	builder Builder
}

var builtinScenes = []registration{
	{
		info: SceneInfo{
			ID:          "final",
			Name:        "Final Scene",
			Description: "Random field of moving diffuse, metal and glass spheres around three large spheres",
			Type:        "builtin",
		},
		builder: NewFinalScene,
	},
	{
		info: SceneInfo{
			ID:          "three-spheres",
			Name:        "Three Spheres",
			Description: "Diffuse, glass and fuzzy metal spheres on a large ground sphere",
			Type:        "builtin",
		},
		builder: NewThreeSpheresScene,
	},
	{
		info: SceneInfo{
			ID:          "single-sphere",
			Name:        "Single Sphere",
			Description: "One diffuse sphere in front of the camera",
			Type:        "builtin",
		},
		builder: NewSingleSphereScene,
	},
}

// ListBuiltinScenes returns the registered scenes in registration order
func ListBuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, r := range builtinScenes {
		infos[i] = r.info
	}
	return infos
}

// New creates the registered scene called id. The scene is not built yet.
func New(id string, random *rand.Rand) (*Scene, error) {
	for _, r := range builtinScenes {
		if r.info.ID == id {
			return r.builder(random)
		}
	}
	return nil, fmt.Errorf("%q: %w", id, ErrUnknownScene)
}

// NewBuilt creates the registered scene called id and builds it with a generator seeded with seed
func NewBuilt(id string, seed int64) (*Scene, error) {
	random := rand.New(rand.NewSource(seed))
	s, err := New(id, random)
	if err != nil {
		return nil, err
	}
	if err := s.Build(random); err != nil {
		return nil, err
	}
	return s, nil
}
