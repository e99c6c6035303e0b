package tracing

import (
	"fmt"
	"os"

	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// CSVTraceWriter is a tracer that stores access and eviction records in a
// CSV file. Accesses and evictions share one table, told apart by the Kind
// column; columns that do not apply to a kind stay empty.
type CSVTraceWriter struct {
	path string
	file *os.File

	rows       []string
	bufferSize int
}

// NewCSVTraceWriter creates a CSVTraceWriter that will write to path. Call
// Init before tracing.
func NewCSVTraceWriter(path string) *CSVTraceWriter {
	return &CSVTraceWriter{
		path:       path,
		bufferSize: 1000,
	}
}

// Init creates the trace file. An empty path picks a unique file name; an
// existing file is never overwritten. Buffered rows are flushed at exit.
func (t *CSVTraceWriter) Init() {
	if t.path == "" {
		t.path = "cachesim_trace_" + xid.New().String()
	}

	filename := t.path + ".csv"
	_, err := os.Stat(filename)
	if err == nil {
		panic(fmt.Errorf("file %s already exists", filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	t.file = file

	fmt.Fprintf(file,
		"Kind, Seq, Level, Op, Addr, Index, Tag, Hit, Dirty, WroteBack\n")

	atexit.Register(func() {
		t.Flush()
		err := t.file.Close()
		if err != nil {
			panic(err)
		}
	})
}

// TraceAccess buffers one access row.
func (t *CSVTraceWriter) TraceAccess(r AccessRecord) {
	t.append(fmt.Sprintf("access, %d, %s, %s, 0x%X, 0x%X, 0x%X, %t, , ",
		r.Seq, r.Level, r.Op, r.Addr, r.Index, r.Tag, r.Hit))
}

// TraceEvict buffers one eviction row.
func (t *CSVTraceWriter) TraceEvict(r EvictRecord) {
	t.append(fmt.Sprintf("evict, %d, %s, , 0x%X, 0x%X, 0x%X, , %t, %t",
		r.Seq, r.Level, r.Addr, r.Index, r.Tag, r.Dirty, r.WroteBack))
}

func (t *CSVTraceWriter) append(row string) {
	t.rows = append(t.rows, row)
	if len(t.rows) >= t.bufferSize {
		t.Flush()
	}
}

// Flush writes the buffered rows to the CSV file.
func (t *CSVTraceWriter) Flush() {
	for _, row := range t.rows {
		fmt.Fprintln(t.file, row)
	}

	t.rows = nil
}
