package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// indices holds the key sets of both sources.
type indices struct {
	ledger  map[string]struct{}
	storage map[string]struct{}
	built   time.Time
	ttl     time.Duration
}

func (i *indices) expired() bool {
	if i.ttl == 0 {
		return true
	}
	return time.Since(i.built) > i.ttl
}

// Cache keeps built indices per spec and collapses concurrent rebuilds.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*indices
	sf      singleflight.Group
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*indices)}
}

// Run reconciles like the package-level Run but reuses indices younger than spec.CacheTTL.
func (c *Cache) Run(ctx context.Context, spec *Spec, ledger, store Source) (*Report, error) {
	key := spec.CacheKey()

	c.mu.RLock()
	idx, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && !idx.expired() {
		return compare(spec, idx), nil
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		idx, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && !idx.expired() {
			return idx, nil
		}

		built, err := buildIndices(ctx, spec, ledger, store)
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
	return compare(spec, v.(*indices)), nil
}

// Invalidate drops the cached indices for spec.
func (c *Cache) Invalidate(spec *Spec) {
	c.mu.Lock()
	delete(c.entries, spec.CacheKey())
	c.mu.Unlock()
}
