// SPDX-License-Identifier: MIT
package bitint

import "math/bits"

// IsPowerOf2 checks if x has exactly one bit set using bit manipulation.
// The expression (x & (x-1)) == 0 works because:
//   - Powers of 2 have exactly one bit set
//   - Subtracting 1 from a power of 2 sets all lower bits
//   - AND operation will be 0 only when a single bit was set
//
// Zero is excluded explicitly. Negative inputs are judged by their
// two's-complement pattern, so math.MinInt32 (only the sign bit set)
// reports true and every other negative value reports false.
//
// Examples:
//
//	Input  Output  Binary
//	8      true    1000 & 0111 = 0000
//	7      false   0111 & 0110 = 0110
//	0      false   Excluded
//	-8     false   ...11000 & ...10111 = ...10000
func IsPowerOf2(x int32) bool {
	return x != 0 && x&(x-1) == 0
}

// NextPowerOfTwo32 returns the next power of 2 >= size.
// Algorithm:
//  1. Subtract 1 from size so exact powers of 2 are preserved
//  2. Find position of highest set bit
//  3. Shift 1 left by that position
//
// Sizes <= 0 return 1. Sizes above 1<<30 overflow to math.MinInt32.
//
// Examples:
//
//	Input  Output  Explanation
//	4      4       Already power of 2 (preserved)
//	5      8       Next power after 5
//	0      1       Handle zero case
//	-1     1       Handle negative case
func NextPowerOfTwo32(size int32) int32 {
	if size <= 0 {
		return 1
	}
	return int32(1 << bits.Len32(uint32(size-1)))
}
