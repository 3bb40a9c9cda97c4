// SPDX-License-Identifier: MIT
package bitint

const (
	laneOnes  uint32 = 0x01010101 // 1 in every byte lane (~0/255)
	laneHighs uint32 = 0x80808080 // high bit of every byte lane
)

// Broadcast replicates n into all four byte lanes of a word.
//
//	Broadcast(0x2a) = 0x2a2a2a2a
func Broadcast(n uint8) uint32 {
	return laneOnes * uint32(n)
}

// HasZeroByte reports whether any of the four 8-bit lanes of v is 0.
// Subtracting 1 from every lane only sets a lane's high bit in both
// (v - 0x01010101) and ^v when that lane was 0.
//
// The boolean is exact for every v. The intermediate flag word is not:
// a zero lane borrows from the lane above it, which can flag that lane
// as well, so this must not be extended to report which lane matched.
func HasZeroByte(v uint32) bool {
	return (v-laneOnes)&^v&laneHighs != 0
}

// HasValue reports whether any byte lane of x equals n.
// XOR with the broadcast value zeroes exactly the matching lanes.
// With n == 0 this is HasZeroByte(x).
func HasValue(x uint32, n uint8) bool {
	return HasZeroByte(x ^ Broadcast(n))
}

// HasGreater reports whether any byte lane of x, as an unsigned byte, is
// greater than n. Adding 127-n to every lane carries into the lane's high
// bit exactly when the lane exceeds n; OR-ing x back in covers lanes that
// already had the high bit set.
//
// Precondition: n <= 127. For larger n the bias wraps and the result is
// not meaningful (HasGreater(0, 200) is true).
func HasGreater(x uint32, n uint8) bool {
	return ((x+Broadcast(127-n))|x)&laneHighs != 0
}

// HasLess reports whether any byte lane of x is less than n.
// Subtracting n from every lane borrows into the high bit of a lane
// exactly when the lane is below n, and ^x drops lanes that started with
// the high bit set. HasLess(x, 1) is HasZeroByte(x).
//
// Precondition: n <= 128. Lanes with the high bit set are never flagged,
// which is only correct while no such lane can be below n; for larger n
// the result is not meaningful (HasLess(0x80808080, 0xff) is false).
func HasLess(x uint32, n uint8) bool {
	return (x-Broadcast(n))&^x&laneHighs != 0
}
