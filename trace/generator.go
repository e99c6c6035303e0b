package trace

import (
	"math/rand"

	"github.com/Bob-Chou/cse240-cache-simulator/hierarchy"
)

// A Generator produces a reproducible pseudo-random access stream. The same
// seed always yields the same stream.
type Generator struct {
	rand       *rand.Rand
	maxAddress uint64
	writeRatio float64
}

// NewGenerator creates a generator of addresses in [0, maxAddress), with
// writeRatio of the accesses being writes.
func NewGenerator(seed int64, maxAddress uint64, writeRatio float64) *Generator {
	return &Generator{
		rand:       rand.New(rand.NewSource(seed)),
		maxAddress: maxAddress,
		writeRatio: writeRatio,
	}
}

// Next returns the next access of the stream.
func (g *Generator) Next() Access {
	op := hierarchy.OpRead
	if g.rand.Float64() < g.writeRatio {
		op = hierarchy.OpWrite
	}

	return Access{
		Op:   op,
		Addr: uint64(g.rand.Int63n(int64(g.maxAddress))),
	}
}
