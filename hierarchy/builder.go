package hierarchy

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// ErrInvalidConfig is wrapped by every configuration error returned from
// Builder.Build.
var ErrInvalidConfig = errors.New("invalid cache configuration")

// Builder can build caches.
type Builder struct {
	capacityBits int
	ways         int
	addrBits     int
	blockBits    int
	writePolicy  WritePolicy
	evictPolicy  EvictPolicy
	logger       *log.Logger
}

// MakeBuilder creates a builder with default parameters: a 64-KB, 4-way
// cache with 32-bit addresses, 64-byte blocks, write-back, and LRU.
func MakeBuilder() Builder {
	return Builder{
		capacityBits: 16,
		ways:         4,
		addrBits:     32,
		blockBits:    6,
		writePolicy:  WriteBack,
		evictPolicy:  LRU,
	}
}

// WithCapacityBits sets the total capacity of the cache, in address bits.
func (b Builder) WithCapacityBits(bits int) Builder {
	b.capacityBits = bits
	return b
}

// WithWayAssociativity sets the number of frames per set.
func (b Builder) WithWayAssociativity(ways int) Builder {
	b.ways = ways
	return b
}

// WithAddrBits sets the simulated address width.
func (b Builder) WithAddrBits(bits int) Builder {
	b.addrBits = bits
	return b
}

// WithBlockBits sets the block size, in address bits.
func (b Builder) WithBlockBits(bits int) Builder {
	b.blockBits = bits
	return b
}

// WithWritePolicy sets the write policy.
func (b Builder) WithWritePolicy(p WritePolicy) Builder {
	b.writePolicy = p
	return b
}

// WithEvictPolicy sets the eviction policy.
func (b Builder) WithEvictPolicy(p EvictPolicy) Builder {
	b.evictPolicy = p
	return b
}

// WithLogger sets the logger that verbose mode writes to. The default
// writes to standard output.
func (b Builder) WithLogger(l *log.Logger) Builder {
	b.logger = l
	return b
}

// Build builds a cache named name. It fails when the configured bit widths
// cannot form valid masks; a failed build returns no usable cache.
func (b Builder) Build(name string) (*Cache, error) {
	if b.ways < 1 {
		return nil, fmt.Errorf("%w: cache %s: ways must be at least 1, got %d",
			ErrInvalidConfig, name, b.ways)
	}

	indexBits := b.capacityBits - b.blockBits - ceilLog2(b.ways)
	tagBits := b.addrBits - indexBits - b.blockBits

	if indexBits < 0 {
		return nil, fmt.Errorf(
			"%w: cache %s: capacity of %d bits is too small for "+
				"%d-way sets of %d-bit blocks",
			ErrInvalidConfig, name, b.capacityBits, b.ways, b.blockBits)
	}

	if tagBits < 0 {
		return nil, fmt.Errorf(
			"%w: cache %s: address width of %d bits leaves no room for tags",
			ErrInvalidConfig, name, b.addrBits)
	}

	logger := b.logger
	if logger == nil {
		logger = log.New(os.Stdout, "", 0)
	}

	c := &Cache{
		name:         name,
		capacityBits: b.capacityBits,
		ways:         b.ways,
		addrBits:     b.addrBits,
		blockBits:    b.blockBits,
		indexBits:    indexBits,
		tagBits:      tagBits,
		writePolicy:  b.writePolicy,
		evictPolicy:  b.evictPolicy,
		indexMask:    bitMask(indexBits, b.blockBits),
		tagMask:      bitMask(tagBits, b.blockBits+indexBits),
		sets:         make(map[uint64]*set),
		logger:       logger,
		addrFmt:      hexFormat(b.addrBits),
		indexFmt:     hexFormat(indexBits),
		tagFmt:       hexFormat(tagBits),
	}

	// Burn clock value zero so the first real access never carries it and
	// LRU comparisons stay unambiguous.
	c.tick()

	return c, nil
}

// hexFormat returns a zero-padded hex verb wide enough for a field of the
// given bit width.
func hexFormat(bits int) string {
	if bits < 1 {
		bits = 1
	}

	return fmt.Sprintf("0x%%0%dX", ((bits-1)>>2)+1)
}
