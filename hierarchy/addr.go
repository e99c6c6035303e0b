package hierarchy

// ceilLog2 returns floor(log2(x+1)), the number of bits reserved for x
// associative ways. A single way still reserves one bit.
func ceilLog2(x int) int {
	x++

	bits := 0
	for x > 1 {
		x >>= 1
		bits++
	}

	return bits
}

// bitMask returns a run of n one-bits starting at offset bits from the LSB.
// A non-positive n yields an empty mask.
func bitMask(n, offset int) uint64 {
	if n <= 0 {
		return 0
	}

	var mask uint64
	for i := 0; i < n; i++ {
		mask <<= 1
		mask |= 1
	}

	return mask << uint(offset)
}

// tag extracts the tag bits of an address.
func (c *Cache) tag(addr uint64) uint64 {
	return (addr & c.tagMask) >> uint(c.indexBits+c.blockBits)
}

// index extracts the set-index bits of an address.
func (c *Cache) index(addr uint64) uint64 {
	return (addr & c.indexMask) >> uint(c.blockBits)
}
