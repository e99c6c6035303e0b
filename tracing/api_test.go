package tracing_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Bob-Chou/cse240-cache-simulator/hierarchy"
	"github.com/Bob-Chou/cse240-cache-simulator/tracing"
)

type capturingTracer struct {
	accesses  []tracing.AccessRecord
	evictions []tracing.EvictRecord
}

func (t *capturingTracer) TraceAccess(r tracing.AccessRecord) {
	t.accesses = append(t.accesses, r)
}

func (t *capturingTracer) TraceEvict(r tracing.EvictRecord) {
	t.evictions = append(t.evictions, r)
}

var _ = Describe("Collect", func() {
	var (
		cache  *hierarchy.Cache
		tracer *capturingTracer
	)

	BeforeEach(func() {
		var err error
		cache, err = hierarchy.MakeBuilder().
			WithCapacityBits(8).
			WithWayAssociativity(1).
			WithAddrBits(16).
			WithBlockBits(2).
			Build("L1")
		Expect(err).ToNot(HaveOccurred())

		tracer = new(capturingTracer)
		tracing.Collect(cache, tracer)
	})

	It("should report accesses with their classification", func() {
		cache.Read(0x80)
		cache.Read(0x80)
		cache.Write(0x84)

		Expect(tracer.accesses).To(HaveLen(3))
		Expect(tracer.accesses[0].Op).To(Equal("read"))
		Expect(tracer.accesses[0].Hit).To(BeFalse())
		Expect(tracer.accesses[0].Addr).To(Equal(uint64(0x80)))
		Expect(tracer.accesses[1].Hit).To(BeTrue())
		Expect(tracer.accesses[2].Op).To(Equal("write"))
		Expect(tracer.accesses[2].Hit).To(BeFalse())
	})

	It("should number records sequentially per level", func() {
		cache.Read(0x80)
		cache.Write(0x84)

		Expect(tracer.accesses[0].Seq).To(Equal(int64(1)))
		Expect(tracer.accesses[1].Seq).To(Equal(int64(2)))
		Expect(tracer.accesses[0].Level).To(Equal("L1"))
	})

	It("should report dirty evictions as written back", func() {
		// One way per set: the second tag of the set evicts the first.
		cache.Write(0x0080)
		cache.Read(0x4080)

		Expect(tracer.evictions).To(HaveLen(1))
		Expect(tracer.evictions[0].Addr).To(Equal(uint64(0x0080)))
		Expect(tracer.evictions[0].Dirty).To(BeTrue())
		Expect(tracer.evictions[0].WroteBack).To(BeTrue())
	})

	It("should report clean evictions without a write-back", func() {
		cache.Read(0x0080)
		cache.Read(0x4080)

		Expect(tracer.evictions).To(HaveLen(1))
		Expect(tracer.evictions[0].Dirty).To(BeFalse())
		Expect(tracer.evictions[0].WroteBack).To(BeFalse())
	})
})
