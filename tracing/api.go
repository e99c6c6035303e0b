// Package tracing observes the traffic of cache levels through hooks and
// hands it to pluggable trace backends. Tracers are purely observational and
// never change simulation results.
package tracing

import (
	"github.com/Bob-Chou/cse240-cache-simulator/hierarchy"
	"github.com/Bob-Chou/cse240-cache-simulator/hooking"
)

// AccessRecord is one classified access observed at a cache level.
type AccessRecord struct {
	Seq   int64
	Level string
	Op    string
	Addr  uint64
	Index uint64
	Tag   uint64
	Hit   bool
}

// EvictRecord is one eviction observed at a cache level. WroteBack reports
// whether the victim was retired downstream as a dirty write-back.
type EvictRecord struct {
	Seq       int64
	Level     string
	Addr      uint64
	Index     uint64
	Tag       uint64
	Dirty     bool
	WroteBack bool
}

// A Tracer consumes access and eviction records.
type Tracer interface {
	TraceAccess(AccessRecord)
	TraceEvict(EvictRecord)
}

// Collect attaches a tracer to a cache. One collector numbers the records of
// one cache; attach separate tracers to separate levels to keep their
// streams apart.
func Collect(c *hierarchy.Cache, t Tracer) {
	c.AcceptHook(&collector{cache: c, tracer: t})
}

// collector adapts hook invocations into trace records.
type collector struct {
	cache  *hierarchy.Cache
	tracer Tracer
	seq    int64
}

func (c *collector) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case hierarchy.HookPosAccess:
		info := ctx.Item.(hierarchy.AccessInfo)
		c.tracer.TraceAccess(AccessRecord{
			Seq:   c.nextSeq(),
			Level: c.cache.Name(),
			Op:    info.Op.String(),
			Addr:  info.Addr,
			Index: info.Index,
			Tag:   info.Tag,
			Hit:   info.Hit,
		})
	case hierarchy.HookPosEvict:
		info := ctx.Item.(hierarchy.EvictInfo)
		c.tracer.TraceEvict(EvictRecord{
			Seq:       c.nextSeq(),
			Level:     c.cache.Name(),
			Addr:      info.Addr,
			Index:     info.Index,
			Tag:       info.Tag,
			Dirty:     info.Dirty,
			WroteBack: info.WroteBack,
		})
	}
}

func (c *collector) nextSeq() int64 {
	c.seq++
	return c.seq
}
