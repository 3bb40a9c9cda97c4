// SPDX-License-Identifier: MIT
package bitint

// WordBits is the width of the words the counting functions operate on.
const WordBits = 32

// PopCount returns the number of set bits in x.
// Each iteration of x &= x-1 clears the lowest set bit, so the loop
// runs once per set bit rather than once per bit position.
// Negative inputs are counted through their two's-complement pattern.
//
// Examples:
//
//	Input          Output
//	0              0
//	0b1011         3
//	-1             32
//	math.MinInt32  1
func PopCount(x int32) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}
	return count
}

// CountTrailingZeroBits counts the consecutive zero bits on the right of v,
// linearly. (v ^ (v-1)) >> 1 turns the trailing zeros into a run of ones
// and clears everything else, then the run is measured by shifting.
//
// v == 0 has no set bit to stop at and returns WordBits (32).
//
// Examples:
//
//	Input  Output  Binary
//	1      0       0001
//	8      3       1000
//	12     2       1100
//	0      32      No set bit
func CountTrailingZeroBits(v uint32) int {
	if v == 0 {
		return WordBits
	}
	v = (v ^ (v - 1)) >> 1
	c := 0
	for ; v != 0; c++ {
		v >>= 1
	}
	return c
}
