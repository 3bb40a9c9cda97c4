// SPDX-License-Identifier: MIT
package bitint

// InterleaveBits returns the Morton code of (x, y): bit i of x lands at
// position 2i and bit i of y at position 2i+1. The loop is the obvious
// bit-by-bit version, 16 iterations regardless of input.
//
// Examples:
//
//	x  y  Output
//	0  0  0
//	1  0  1
//	0  1  2
//	1  1  3
//	3  0  5      0b0101
func InterleaveBits(x, y uint16) uint32 {
	var z uint32
	for i := range 16 {
		z |= (uint32(x)&(1<<i))<<i | (uint32(y)&(1<<i))<<(i+1)
	}
	return z
}

// DeinterleaveBits splits a Morton code back into its two coordinates,
// taking even bits for x and odd bits for y.
func DeinterleaveBits(z uint32) (x, y uint16) {
	for i := range 16 {
		x |= uint16((z>>(2*i))&1) << i
		y |= uint16((z>>(2*i+1))&1) << i
	}
	return x, y
}
