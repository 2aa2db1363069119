package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/crossfill/crossfill/config"
)

// The cache holds parsed objects that are expensive enough to avoid
// re-reading from disk on every solve: grids and word lists, keyed by file
// path. The shell reuses these across repeated solve commands.

type cache struct {
	sync.Mutex
	objects map[string]any
}

// A LoadFunc parses the object behind key from disk.
type LoadFunc func(cfg *config.Config, key string) (any, error)

var globalObjectCache = &cache{objects: make(map[string]any)}

func (c *cache) get(cfg *config.Config, key string, load LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := load(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

// Load fetches the object for key, parsing it with load on a cache miss.
func Load(cfg *config.Config, key string, load LoadFunc) (any, error) {
	return globalObjectCache.get(cfg, key, load)
}
