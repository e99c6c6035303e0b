package hierarchy

// Stats is a snapshot of the monotonically non-decreasing counters of one
// cache level. Hits+Misses equals the total number of accesses serviced by
// the level, including traffic forwarded from the level above.
type Stats struct {
	Hits        uint64
	ReadHits    uint64
	WriteHits   uint64
	Misses      uint64
	ReadMisses  uint64
	WriteMisses uint64
}

// Stats returns a snapshot of the counters. Reading statistics never has
// side effects.
func (c *Cache) Stats() Stats {
	return c.stats
}

// HitCount returns the total number of hits.
func (c *Cache) HitCount() uint64 {
	return c.stats.Hits
}

// ReadHitCount returns the number of read hits.
func (c *Cache) ReadHitCount() uint64 {
	return c.stats.ReadHits
}

// WriteHitCount returns the number of write hits.
func (c *Cache) WriteHitCount() uint64 {
	return c.stats.WriteHits
}

// MissCount returns the total number of misses.
func (c *Cache) MissCount() uint64 {
	return c.stats.Misses
}

// ReadMissCount returns the number of read misses.
func (c *Cache) ReadMissCount() uint64 {
	return c.stats.ReadMisses
}

// WriteMissCount returns the number of write misses.
func (c *Cache) WriteMissCount() uint64 {
	return c.stats.WriteMisses
}
