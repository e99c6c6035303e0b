package tracing

import (
	"github.com/Bob-Chou/cse240-cache-simulator/datarecording"
)

const (
	accessTable = "cache_accesses"
	evictTable  = "cache_evictions"
)

type accessEntry struct {
	Seq   int64
	Level string
	Op    string
	Addr  uint64
	Index uint64
	Tag   uint64
	Hit   bool
}

type evictEntry struct {
	Seq       int64
	Level     string
	Addr      uint64
	Index     uint64
	Tag       uint64
	Dirty     bool
	WroteBack bool
}

// DBTracer records cache traffic through a DataRecorder into the
// cache_accesses and cache_evictions tables.
type DBTracer struct {
	recorder datarecording.DataRecorder
}

// NewDBTracer creates a DBTracer on top of a recorder, creating the tables
// it writes to.
func NewDBTracer(recorder datarecording.DataRecorder) *DBTracer {
	recorder.CreateTable(accessTable, accessEntry{})
	recorder.CreateTable(evictTable, evictEntry{})

	return &DBTracer{recorder: recorder}
}

// TraceAccess records one access.
func (t *DBTracer) TraceAccess(r AccessRecord) {
	t.recorder.InsertData(accessTable, accessEntry{
		Seq:   r.Seq,
		Level: r.Level,
		Op:    r.Op,
		Addr:  r.Addr,
		Index: r.Index,
		Tag:   r.Tag,
		Hit:   r.Hit,
	})
}

// TraceEvict records one eviction.
func (t *DBTracer) TraceEvict(r EvictRecord) {
	t.recorder.InsertData(evictTable, evictEntry{
		Seq:       r.Seq,
		Level:     r.Level,
		Addr:      r.Addr,
		Index:     r.Index,
		Tag:       r.Tag,
		Dirty:     r.Dirty,
		WroteBack: r.WroteBack,
	})
}
