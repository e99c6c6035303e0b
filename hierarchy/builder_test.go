package hierarchy_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Bob-Chou/cse240-cache-simulator/hierarchy"
)

var _ = Describe("Builder", func() {
	It("should build a cache with the requested geometry", func() {
		c, err := hierarchy.MakeBuilder().
			WithCapacityBits(16).
			WithWayAssociativity(2).
			WithAddrBits(32).
			WithBlockBits(5).
			WithWritePolicy(hierarchy.WriteBack).
			WithEvictPolicy(hierarchy.LRU).
			Build("L1")

		Expect(err).ToNot(HaveOccurred())
		Expect(c.Name()).To(Equal("L1"))
		Expect(c.WayAssociativity()).To(Equal(2))
		Expect(c.IndexBits()).To(Equal(10))
		Expect(c.TagBits()).To(Equal(17))
		Expect(c.IndexBits() + c.TagBits() + c.BlockBits()).To(
			Equal(c.AddrBits()))
	})

	It("should reject fewer than one way", func() {
		_, err := hierarchy.MakeBuilder().
			WithWayAssociativity(0).
			Build("L1")

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, hierarchy.ErrInvalidConfig)).To(BeTrue())
	})

	It("should reject a capacity too small for the block size", func() {
		_, err := hierarchy.MakeBuilder().
			WithCapacityBits(4).
			WithWayAssociativity(4).
			WithBlockBits(6).
			Build("L1")

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, hierarchy.ErrInvalidConfig)).To(BeTrue())
	})

	It("should reject an address width that leaves no tag bits", func() {
		_, err := hierarchy.MakeBuilder().
			WithCapacityBits(20).
			WithWayAssociativity(1).
			WithAddrBits(8).
			WithBlockBits(5).
			Build("L1")

		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, hierarchy.ErrInvalidConfig)).To(BeTrue())
	})
})
