package hierarchy

import (
	"fmt"
	"io"
	"log"

	"github.com/Bob-Chou/cse240-cache-simulator/hooking"
)

// A Level is a component in the memory hierarchy that can service reads and
// writes forwarded to it from the level above. Both return a hit indicator.
type Level interface {
	Read(addr uint64) bool
	Write(addr uint64) bool
}

// A Cache simulates one level of a set-associative cache. It mimics reads and
// writes and records hits and misses, but does not care about the values
// read or written.
//
// Levels can be cascaded to arbitrary depth with Cascade; each level
// functions independently and keeps its own statistics.
type Cache struct {
	hooking.HookableBase

	name string

	capacityBits int
	ways         int
	addrBits     int
	blockBits    int
	indexBits    int
	tagBits      int

	writePolicy WritePolicy
	evictPolicy EvictPolicy

	indexMask uint64
	tagMask   uint64

	clock uint64
	sets  map[uint64]*set
	next  Level

	stats Stats

	verbose  bool
	logger   *log.Logger
	addrFmt  string
	indexFmt string
	tagFmt   string
}

var _ Level = (*Cache)(nil)

// Name returns the name the cache was built with.
func (c *Cache) Name() string {
	return c.name
}

// WayAssociativity returns the number of frames per set.
func (c *Cache) WayAssociativity() int {
	return c.ways
}

// AddrBits returns the configured address width.
func (c *Cache) AddrBits() int {
	return c.addrBits
}

// BlockBits returns the number of block-offset bits.
func (c *Cache) BlockBits() int {
	return c.blockBits
}

// IndexBits returns the number of set-index bits.
func (c *Cache) IndexBits() int {
	return c.indexBits
}

// TagBits returns the number of tag bits.
func (c *Cache) TagBits() int {
	return c.tagBits
}

// WritePolicy returns the configured write policy.
func (c *Cache) WritePolicy() WritePolicy {
	return c.writePolicy
}

// EvictPolicy returns the configured eviction policy.
func (c *Cache) EvictPolicy() EvictPolicy {
	return c.evictPolicy
}

// SetVerbose toggles human-readable logging of each access. It is purely
// observational and never alters statistics or cache state.
func (c *Cache) SetVerbose(verbose bool) {
	c.verbose = verbose
}

// Cascade sets or replaces the next level in the memory hierarchy. Reads
// that miss and qualifying write propagation are forwarded there. A nil next
// level means this cache is backed directly by unmodeled main memory.
//
// The chain formed by cascading must be acyclic and finite; the cache does
// not own the level it forwards to.
func (c *Cache) Cascade(next Level) {
	c.next = next
}

// Read mimics a cache read of addr and returns true on a hit. A miss always
// fetches from the next level before the block is installed, regardless of
// write policy.
func (c *Cache) Read(addr uint64) bool {
	index := c.index(addr)
	tag := c.tag(addr)

	s := c.sets[index]
	if f := s.lookup(tag); f != nil {
		c.stats.Hits++
		c.stats.ReadHits++
		f.lastAccess = c.tick()

		c.logAccess(OpRead, addr, index, tag, true)
		c.invokeAccess(OpRead, addr, index, tag, true)

		return true
	}

	c.stats.Misses++
	c.stats.ReadMisses++

	c.logAccess(OpRead, addr, index, tag, false)
	c.invokeAccess(OpRead, addr, index, tag, false)

	if c.next != nil {
		c.next.Read(addr)
	}

	s = c.setAt(index)
	if s.size() >= c.ways {
		c.evict(s, index)
	}
	s.insert(&frame{addr: addr, tag: tag, lastAccess: c.tick()})

	return false
}

// Write mimics a cache write of addr and returns true on a hit. On a miss
// the block is installed directly without fetching from below; writes only
// reach the next level per the write policy: immediately under
// write-through, or at dirty eviction under write-back.
func (c *Cache) Write(addr uint64) bool {
	index := c.index(addr)
	tag := c.tag(addr)

	s := c.sets[index]
	f := s.lookup(tag)
	hit := f != nil

	if hit {
		c.stats.Hits++
		c.stats.WriteHits++
		f.lastAccess = c.tick()
	} else {
		c.stats.Misses++
		c.stats.WriteMisses++
	}

	c.logAccess(OpWrite, addr, index, tag, hit)
	c.invokeAccess(OpWrite, addr, index, tag, hit)

	if !hit {
		s = c.setAt(index)
		if s.size() >= c.ways {
			c.evict(s, index)
		}

		f = &frame{addr: addr, tag: tag, lastAccess: c.tick()}
		s.insert(f)
	}

	// Write-through forwards every write, hit or miss. Write-back defers
	// until the dirty block is evicted.
	if c.writePolicy == WriteThrough {
		c.logNote("(write through "+c.addrFmt+")", addr)
		if c.next != nil {
			c.next.Write(addr)
		}
	}

	f.dirty = true

	return hit
}

// evict frees one frame of a full set, retiring the victim downstream when
// the write policy requires it. Never called on an empty set.
func (c *Cache) evict(s *set, index uint64) {
	victim := c.findVictim(s)
	s.remove(victim)

	wroteBack := c.writePolicy == WriteBack && victim.dirty

	c.logNote("(evict "+c.tagFmt+")", victim.tag)

	if wroteBack {
		c.logNote("(write back dirty "+c.addrFmt+")", victim.addr)
		if c.next != nil {
			c.next.Write(victim.addr)
		}
	}

	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosEvict,
		Item: EvictInfo{
			Addr:      victim.addr,
			Index:     index,
			Tag:       victim.tag,
			Dirty:     victim.dirty,
			WroteBack: wroteBack,
		},
	})
}

// setAt returns the set for an index, creating it on first use. A set that
// was never touched is equivalent to an empty one.
func (c *Cache) setAt(index uint64) *set {
	s := c.sets[index]
	if s == nil {
		s = &set{}
		c.sets[index] = s
	}

	return s
}

// tick returns the current logical clock value and advances it. The clock
// orders accesses within this level only; it has no relation to wall time.
func (c *Cache) tick() uint64 {
	t := c.clock
	c.clock++

	return t
}

func (c *Cache) invokeAccess(op Op, addr, index, tag uint64, hit bool) {
	c.InvokeHook(hooking.HookCtx{
		Domain: c,
		Pos:    HookPosAccess,
		Item: AccessInfo{
			Op:    op,
			Addr:  addr,
			Index: index,
			Tag:   tag,
			Hit:   hit,
		},
	})
}

func (c *Cache) logAccess(op Op, addr, index, tag uint64, hit bool) {
	if !c.verbose {
		return
	}

	outcome := "MISS"
	if hit {
		outcome = "HIT"
	}

	c.logger.Printf("[%s] %s "+c.addrFmt+", index "+c.indexFmt+
		", tag "+c.tagFmt+", %s",
		c.name, op, addr, index, tag, outcome)
}

func (c *Cache) logNote(format string, args ...any) {
	if !c.verbose {
		return
	}

	c.logger.Printf("[%s] "+format, append([]any{c.name}, args...)...)
}

// WriteStats writes the human-readable statistics block for this level.
func (c *Cache) WriteStats(w io.Writer) {
	fmt.Fprintln(w, "----------------- Statistics -----------------")
	fmt.Fprintf(w, "%s Total Hit: %d (Read: %d, Write: %d)\n",
		c.name, c.stats.Hits, c.stats.ReadHits, c.stats.WriteHits)
	fmt.Fprintf(w, "%s Total Miss: %d (Read: %d, Write: %d)\n",
		c.name, c.stats.Misses, c.stats.ReadMisses, c.stats.WriteMisses)
	fmt.Fprintln(w, "----------------------------------------------")
}
