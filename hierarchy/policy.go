package hierarchy

// WritePolicy selects how writes propagate to the next hierarchy level.
type WritePolicy int

const (
	// WriteBack defers propagation until a dirty block is evicted.
	WriteBack WritePolicy = iota
	// WriteThrough propagates every write downstream immediately.
	WriteThrough
)

func (p WritePolicy) String() string {
	switch p {
	case WriteBack:
		return "write-back"
	case WriteThrough:
		return "write-through"
	default:
		return "unknown"
	}
}

// EvictPolicy selects which frame leaves a full set.
type EvictPolicy int

const (
	// LRU evicts the frame with the oldest last-access clock value.
	LRU EvictPolicy = iota
	// FIFO evicts the earliest-inserted frame still present, ignoring
	// recency.
	FIFO
)

func (p EvictPolicy) String() string {
	switch p {
	case LRU:
		return "lru"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}
