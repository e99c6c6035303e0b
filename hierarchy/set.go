package hierarchy

// A frame is one cached block: the tag it represents, the address that
// installed it (kept so a dirty eviction can be written back), a dirty flag,
// and the logical-clock value of its last access.
type frame struct {
	addr       uint64
	tag        uint64
	dirty      bool
	lastAccess uint64
}

// A set holds the frames that map to one index value, in insertion order.
// A nil set is an empty set; sets are created lazily on first insertion.
type set struct {
	frames []*frame
}

// lookup returns the frame holding tag, or nil.
func (s *set) lookup(tag uint64) *frame {
	if s == nil {
		return nil
	}

	for _, f := range s.frames {
		if f.tag == tag {
			return f
		}
	}

	return nil
}

// insert appends a frame, preserving insertion order for FIFO eviction.
func (s *set) insert(f *frame) {
	s.frames = append(s.frames, f)
}

// remove drops a frame without disturbing the order of the others.
func (s *set) remove(victim *frame) {
	for i, f := range s.frames {
		if f == victim {
			s.frames = append(s.frames[:i], s.frames[i+1:]...)
			return
		}
	}
}

// size returns the number of frames currently held.
func (s *set) size() int {
	if s == nil {
		return 0
	}

	return len(s.frames)
}
