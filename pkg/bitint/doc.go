/*
Package bitint provides classic bit manipulation tricks over fixed-width
integers: sign comparison, power-of-2 tests, population and trailing-zero
counts, Morton interleaving, byte-lane searches within a 32-bit word, and
the lexicographic successor of a bit permutation.

Design Principles:
- Zero Allocations: All operations use stack memory only
- Fixed Width: Every function takes int32, uint32, uint16 or uint8, never int
- Wraparound: Relies on Go's defined two's-complement overflow
- Caller Burden: Out-of-domain input is a documented precondition, not an error

Usage:

	// Pack two grid coordinates into one Morton code
	z := bitint.InterleaveBits(x, y)

	// Scan four packed bytes for a terminator without a loop
	if bitint.HasValue(word, '\n') {
		...
	}

	// Walk every 8-bit word with three bits set
	for v := uint32(0b111); v < 1<<8; v = bitint.NextPermutation(v) {
		...
	}

----------------------------------------------------------------------

Byte lanes:

	A uint32 is treated as four 8-bit lanes. The byte-lane tests
	subtract or add a value broadcast into every lane and then look
	only at the high bit of each lane (mask 0x80808080).

	HasZeroByte(v) = (v - 0x01010101) & ^v & 0x80808080 != 0

	- A lane that is 0 borrows: 0x00 - 0x01 = 0xFF, and ^0x00 = 0xFF,
	  so its high bit survives both ANDs.
	- A lane that is not 0 and has no borrow coming in cannot set its
	  high bit in both (b-1) and ^b at the same time.

	The yes/no answer is exact. The flag word itself is not: once a
	lane borrows, the lane above it may light up too (0x0100 flags
	both lanes), so the flags must not be used to locate the lane.

	HasLess and HasGreater use the same shape on a biased word and
	are exact only on part of the input domain, see their docs.
*/
package bitint
