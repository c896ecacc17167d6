package scene

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/df07/go-sphere-pathtracer/pkg/log"
)

// Cache keeps recently built scenes so repeated renders of the same scene and seed skip
// the scene construction and BVH build. Cached scenes are shared and must not be modified.
type Cache struct {
	scenes *lru.Cache
	logger log.Logger
}

// NewCache creates a cache holding up to size built scenes
func NewCache(size int, logger log.Logger) (*Cache, error) {
	scenes, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create scene cache: %w", err)
	}
	return &Cache{scenes: scenes, logger: logger}, nil
}

func cacheKey(id string, seed int64) string {
	return fmt.Sprintf("%s#%d", id, seed)
}

// Get returns the built scene for id and seed, building it on a miss
func (c *Cache) Get(id string, seed int64) (*Scene, error) {
	key := cacheKey(id, seed)
	if cached, ok := c.scenes.Get(key); ok {
		c.logger.Debugf("scene cache hit for %s", key)
		return cached.(*Scene), nil
	}

	s, err := NewBuilt(id, seed)
	if err != nil {
		return nil, err
	}

	if stats, err := s.BVHStats(); err == nil {
		c.logger.Infof("built scene %s: %d primitives, %d BVH nodes, depth %d",
			key, stats.Primitives, stats.Nodes, stats.MaxDepth)
	}

	c.scenes.Add(key, s)
	c.logger.Debugf("scene cache holds %d scene(s)", c.Len())
	return s, nil
}

// Len returns the number of cached scenes
func (c *Cache) Len() int {
	return c.scenes.Len()
}
