package marching

import "sync"

// cornerCache memoizes SDF evaluations keyed by integer grid corner
// position, so that voxels sharing a corner (up to eight of them) invoke
// the SDF at most once each (spec.md §4.6). Guarded by its own mutex,
// separate from the triangle buffer's, per spec.md §5.
type cornerCache struct {
	mu     sync.Mutex
	values map[int64]float64
}

func newCornerCache() *cornerCache {
	return &cornerCache{values: make(map[int64]float64)}
}

// getOrCompute returns the cached value for key, computing and storing it
// via compute if absent. Duplicate evaluation before first publication is
// permitted by spec.md §5 (the SDF is deterministic, so it is benign) — this
// implementation avoids it anyway by holding the lock across the compute.
func (c *cornerCache) getOrCompute(key int64, compute func() float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.values[key]; ok {
		return v
	}
	v := compute()
	c.values[key] = v
	return v
}
