package hierarchy

import (
	"github.com/Bob-Chou/cse240-cache-simulator/hooking"
)

// Hook positions at which a Cache invokes its hooks. Hooks observe traffic
// only; they must not mutate cache state.
var (
	HookPosAccess = &hooking.HookPos{Name: "Access"}
	HookPosEvict  = &hooking.HookPos{Name: "Evict"}
)

// Op is the kind of a memory access.
type Op int

// The two access kinds.
const (
	OpRead Op = iota
	OpWrite
)

func (o Op) String() string {
	switch o {
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	default:
		return "unknown"
	}
}

// AccessInfo describes one serviced access. It is the Item of a HookPosAccess
// invocation, emitted after hit/miss classification.
type AccessInfo struct {
	Op    Op
	Addr  uint64
	Index uint64
	Tag   uint64
	Hit   bool
}

// EvictInfo describes one eviction. It is the Item of a HookPosEvict
// invocation. WroteBack reports whether the victim was dirty under
// write-back policy and therefore retired downstream.
type EvictInfo struct {
	Addr      uint64
	Index     uint64
	Tag       uint64
	Dirty     bool
	WroteBack bool
}
