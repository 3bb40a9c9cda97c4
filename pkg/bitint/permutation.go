// SPDX-License-Identifier: MIT
package bitint

import "math/bits"

// NextPermutation returns the next larger word with the same number of set
// bits as v, so repeated calls walk every k-of-32 bit pattern in ascending
// order.
//
// Algorithm:
//  1. t = v | (v-1) sets the trailing zeros, leaving the lowest run of ones
//     extended to bit 0
//  2. t+1 clears that run and sets the zero bit just above it
//  3. The ones removed from the run, less the one that moved up, are packed
//     back into the lowest bits
//
// Examples:
//
//	Input     Output
//	0b00111   0b01011
//	0b01011   0b01101
//	0b01110   0b10011
//
// Precondition: v != 0. NextPermutation panics on 0 rather than shifting by
// a population-dependent amount. The last permutation of a population (all
// ones packed at the top, e.g. 0xC0000000) has no successor in 32 bits and
// wraps to a smaller value; use NextPermutationOK to detect that.
func NextPermutation(v uint32) uint32 {
	if v == 0 {
		panic("bitint: NextPermutation of 0")
	}
	t := v | (v - 1)
	return (t + 1) | (((^t & -^t) - 1) >> (bits.TrailingZeros32(v) + 1))
}

// NextPermutationOK is NextPermutation with its preconditions checked.
// It returns false for v == 0 and for the last permutation of v's
// population, where no larger 32-bit word with the same count exists.
func NextPermutationOK(v uint32) (uint32, bool) {
	if v == 0 || v|(v-1) == ^uint32(0) {
		return 0, false
	}
	return NextPermutation(v), true
}
