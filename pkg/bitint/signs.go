// SPDX-License-Identifier: MIT
package bitint

// HasOppositeSigns reports whether x and y have different sign bits.
// XOR leaves the sign bit set only when exactly one input is negative.
// Zero counts as non-negative.
//
// Examples:
//
//	x   y   Output
//	5   -3  true
//	5   3   false
//	0   -1  true
//	0   0   false
func HasOppositeSigns(x, y int32) bool {
	return (x ^ y) < 0
}
