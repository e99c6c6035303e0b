package tracing_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Bob-Chou/cse240-cache-simulator/tracing"
)

var _ = Describe("CSVTraceWriter", func() {
	var (
		path   string
		writer *tracing.CSVTraceWriter
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "trace")
		writer = tracing.NewCSVTraceWriter(path)
		writer.Init()
	})

	readFile := func() string {
		data, err := os.ReadFile(path + ".csv")
		Expect(err).ToNot(HaveOccurred())
		return string(data)
	}

	It("should write a header on init", func() {
		Expect(readFile()).To(ContainSubstring(
			"Kind, Seq, Level, Op, Addr"))
	})

	It("should write buffered rows on flush", func() {
		writer.TraceAccess(tracing.AccessRecord{
			Seq:   1,
			Level: "L1",
			Op:    "read",
			Addr:  0x110000,
			Index: 0x3,
			Tag:   0x44,
			Hit:   false,
		})
		writer.TraceEvict(tracing.EvictRecord{
			Seq:       2,
			Level:     "L1",
			Addr:      0x120000,
			Dirty:     true,
			WroteBack: true,
		})

		Expect(readFile()).ToNot(ContainSubstring("access"))

		writer.Flush()

		content := readFile()
		Expect(content).To(ContainSubstring(
			"access, 1, L1, read, 0x110000"))
		Expect(content).To(ContainSubstring("evict, 2, L1"))
	})

	It("should refuse to overwrite an existing file", func() {
		clashing := tracing.NewCSVTraceWriter(path)

		Expect(clashing.Init).To(Panic())
	})
})
