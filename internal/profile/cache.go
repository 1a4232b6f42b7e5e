package profile

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/jonathan/ats-screener/internal/skills"
	"github.com/jonathan/ats-screener/internal/types"
)

// Cache memoizes built profiles keyed by a digest of the raw job description.
// Concurrent requests for the same posting share a single build.
type Cache struct {
	extractor *skills.Extractor
	group     singleflight.Group

	mu      sync.RWMutex
	entries map[string]*types.JobProfile
}

// NewCache creates an empty profile cache backed by the given extractor.
func NewCache(extractor *skills.Extractor) *Cache {
	return &Cache{
		extractor: extractor,
		entries:   make(map[string]*types.JobProfile),
	}
}

func cacheKey(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// GetOrBuild returns the cached profile for the job description, building
// and storing it on first sight. Build failures are not cached, so a caller
// may retry with corrected text.
func (c *Cache) GetOrBuild(ctx context.Context, raw string) (*types.JobProfile, error) {
	key := cacheKey(raw)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}

		built, err := Build(ctx, raw, c.extractor)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = built
		c.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*types.JobProfile), nil
}

// Len reports how many distinct job descriptions have been profiled.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
