package hierarchy

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Victim selection", func() {
	var c *Cache

	makeCache := func(policy EvictPolicy) *Cache {
		cache, err := MakeBuilder().
			WithCapacityBits(8).
			WithWayAssociativity(4).
			WithAddrBits(16).
			WithBlockBits(2).
			WithEvictPolicy(policy).
			Build("L1")
		Expect(err).ToNot(HaveOccurred())

		return cache
	}

	It("should pick the minimum last-access frame under LRU", func() {
		c = makeCache(LRU)

		s := &set{frames: []*frame{
			{tag: 1, lastAccess: 5},
			{tag: 2, lastAccess: 3},
			{tag: 3, lastAccess: 9},
		}}

		Expect(c.findVictim(s).tag).To(Equal(uint64(2)))
	})

	It("should break LRU ties toward the earliest-inserted frame", func() {
		c = makeCache(LRU)

		s := &set{frames: []*frame{
			{tag: 1, lastAccess: 3},
			{tag: 2, lastAccess: 3},
		}}

		Expect(c.findVictim(s).tag).To(Equal(uint64(1)))
	})

	It("should pick the insertion-order front under FIFO", func() {
		c = makeCache(FIFO)

		s := &set{frames: []*frame{
			{tag: 4, lastAccess: 9},
			{tag: 5, lastAccess: 1},
		}}

		Expect(c.findVictim(s).tag).To(Equal(uint64(4)))
	})

	It("should panic when asked to evict from an empty set", func() {
		c = makeCache(LRU)

		Expect(func() { c.findVictim(&set{}) }).To(Panic())
	})

	It("should preserve insertion order across removals", func() {
		f1 := &frame{tag: 1}
		f2 := &frame{tag: 2}
		f3 := &frame{tag: 3}

		s := &set{}
		s.insert(f1)
		s.insert(f2)
		s.insert(f3)
		s.remove(f2)

		Expect(s.frames).To(Equal([]*frame{f1, f3}))
		Expect(s.lookup(2)).To(BeNil())
		Expect(s.lookup(3)).To(BeIdenticalTo(f3))
	})
})
