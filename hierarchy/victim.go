package hierarchy

// findVictim selects the frame to evict from a full set, following the
// configured eviction policy. The whole lookup-evict-insert path stays in one
// routine per policy branch so it can be audited in one place.
//
// LRU scans the real entries only, starting from an explicit "no victim yet"
// state, and keeps the first frame with the minimum last-access clock. FIFO
// takes the insertion-ordered front of the set.
func (c *Cache) findVictim(s *set) *frame {
	if s.size() == 0 {
		panic("eviction invoked on an empty set")
	}

	switch c.evictPolicy {
	case LRU:
		var victim *frame
		for _, f := range s.frames {
			if victim == nil || f.lastAccess < victim.lastAccess {
				victim = f
			}
		}
		return victim
	case FIFO:
		return s.frames[0]
	default:
		panic("unknown evict policy: " + c.evictPolicy.String())
	}
}
