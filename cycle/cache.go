package cycle

// Cache maps a snapshot key to the step and measure at which it was first
// observed. Entries are never evicted.
type Cache[K comparable] struct {
	first map[K]Entry
}

// NewCache returns an empty cache.
func NewCache[K comparable]() *Cache[K] {
	return &Cache[K]{first: make(map[K]Entry)}
}

// Observe records key at (step, measure) unless it is already known. It
// returns the first entry for key and whether key had been seen before.
func (c *Cache[K]) Observe(key K, step, measure int64) (Entry, bool) {
	if e, ok := c.first[key]; ok {
		return e, true
	}
	e := Entry{Step: step, Measure: measure}
	c.first[key] = e

	return e, false
}

// Len reports the number of distinct keys observed.
func (c *Cache[K]) Len() int { return len(c.first) }
