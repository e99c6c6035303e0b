package hierarchy

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Address math", func() {
	It("should compute the bits reserved for ways", func() {
		Expect(ceilLog2(1)).To(Equal(1))
		Expect(ceilLog2(2)).To(Equal(1))
		Expect(ceilLog2(3)).To(Equal(2))
		Expect(ceilLog2(4)).To(Equal(2))
		Expect(ceilLog2(8)).To(Equal(3))
		Expect(ceilLog2(9)).To(Equal(3))
	})

	It("should build contiguous masks at the requested offset", func() {
		Expect(bitMask(4, 0)).To(Equal(uint64(0xF)))
		Expect(bitMask(5, 2)).To(Equal(uint64(0x7C)))
		Expect(bitMask(0, 7)).To(Equal(uint64(0)))
		Expect(bitMask(-3, 7)).To(Equal(uint64(0)))
	})

	It("should split an address into non-overlapping fields", func() {
		c, err := MakeBuilder().
			WithCapacityBits(16).
			WithWayAssociativity(2).
			WithAddrBits(32).
			WithBlockBits(5).
			Build("L1")
		Expect(err).ToNot(HaveOccurred())

		Expect(c.indexBits + c.tagBits + c.blockBits).To(Equal(c.addrBits))
		Expect(c.indexMask & c.tagMask).To(Equal(uint64(0)))
		Expect(c.indexMask & bitMask(c.blockBits, 0)).To(Equal(uint64(0)))

		addr := uint64(0x110000)
		Expect(c.index(addr)).To(Equal((addr >> 5) & 0x3FF))
		Expect(c.tag(addr)).To(Equal(addr >> 15))
	})

	It("should keep set occupancy within the way associativity", func() {
		c, err := MakeBuilder().
			WithCapacityBits(8).
			WithWayAssociativity(3).
			WithAddrBits(16).
			WithBlockBits(2).
			Build("L1")
		Expect(err).ToNot(HaveOccurred())

		for i := uint64(0); i < 500; i++ {
			addr := (i * 37 % 300) << 2
			if i%2 == 0 {
				c.Read(addr)
			} else {
				c.Write(addr)
			}

			for _, s := range c.sets {
				Expect(s.size()).To(BeNumerically("<=", c.ways))
			}
		}
	})
})
