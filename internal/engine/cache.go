package engine

import (
	"sync"

	"github.com/TurbulentGoat/orbitals/internal/isosurface"
)

// cacheKey is the full immutable request tuple. Two requests with equal
// keys are guaranteed identical results, so insert-once semantics are
// sound.
type cacheKey struct {
	n, l, m  int
	k        int
	mode     isosurface.Mode
	fraction float64
	mass     float64
	rep      Representation
}

func keyOf(req Request) cacheKey {
	p := req.policy()
	return cacheKey{
		n: req.N, l: req.L, m: req.M,
		k:        req.resolution(),
		mode:     p.Mode,
		fraction: p.Fraction,
		mass:     p.Mass,
		rep:      req.Rep,
	}
}

// resultCache is a read-through cache with insert-once, read-many
// semantics. Stored results are shared pointers and must never be
// mutated by consumers.
type resultCache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*Result
}

func newResultCache() *resultCache {
	return &resultCache{entries: make(map[cacheKey]*Result)}
}

func (c *resultCache) get(k cacheKey) (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.entries[k]
	return r, ok
}

func (c *resultCache) put(k cacheKey, r *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// First insert wins; concurrent computations of the same key
	// produce identical results anyway.
	if _, ok := c.entries[k]; !ok {
		c.entries[k] = r
	}
}
