package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"animal-encyclopedia/internal/domain/animals"
)

type cacheEntry struct {
	items     []animals.Animal
	expiresAt time.Time
}

// LookupCache es la versión in-memory de animals.LookupCache (dev / sin Redis).
type LookupCache struct {
	mu    sync.Mutex
	ttl   time.Duration
	byKey map[string]cacheEntry
	now   func() time.Time
}

func NewLookupCache(ttl time.Duration) *LookupCache {
	return &LookupCache{
		ttl:   ttl,
		byKey: make(map[string]cacheEntry),
		now:   time.Now,
	}
}

func (c *LookupCache) Get(ctx context.Context, key string) ([]animals.Animal, bool, error) {
	key = strings.ToLower(strings.TrimSpace(key))

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.byKey[key]
	if !ok {
		return nil, false, nil
	}
	if c.ttl > 0 && !c.now().Before(e.expiresAt) {
		delete(c.byKey, key)
		return nil, false, nil
	}

	out := make([]animals.Animal, len(e.items))
	copy(out, e.items)
	return out, true, nil
}

func (c *LookupCache) Set(ctx context.Context, key string, items []animals.Animal) error {
	key = strings.ToLower(strings.TrimSpace(key))

	cp := make([]animals.Animal, len(items))
	copy(cp, items)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.byKey[key] = cacheEntry{items: cp, expiresAt: c.now().Add(c.ttl)}
	return nil
}
