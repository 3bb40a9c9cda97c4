// SPDX-License-Identifier: MIT
package bitint

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"
)

// countOnes is the brute-force reference: test every bit position.
func countOnes(x uint32) int {
	n := 0
	for i := range WordBits {
		if x>>i&1 == 1 {
			n++
		}
	}
	return n
}

func TestPopCount(t *testing.T) {
	tests := []struct {
		x        int32
		expected int
	}{
		{0, 0},
		{1, 1},
		{0b1011, 3},
		{0xff, 8},
		{-1, 32},            // All ones in two's complement
		{math.MinInt32, 1},  // Sign bit only
		{math.MaxInt32, 31}, // Everything but the sign bit
		{-2, 31},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d→%d", tt.x, tt.expected), func(t *testing.T) {
			result := PopCount(tt.x)
			if result != tt.expected {
				t.Errorf("PopCount(%d) = %d, expected %d", tt.x, result, tt.expected)
			}
		})
	}
}

func TestPopCount_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		x := int32(rng.Uint32())
		if got, want := PopCount(x), countOnes(uint32(x)); got != want {
			t.Fatalf("PopCount(%#x) = %d, expected %d", uint32(x), got, want)
		}
	}
}

func TestCountTrailingZeroBits(t *testing.T) {
	tests := []struct {
		v        uint32
		expected int
	}{
		{0, 32}, // No set bit
		{1, 0},
		{2, 1},
		{8, 3},
		{12, 2},
		{0x80000000, 31},
		{0xffffffff, 0},
		{0xf0000000, 28},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%#x→%d", tt.v, tt.expected), func(t *testing.T) {
			result := CountTrailingZeroBits(tt.v)
			if result != tt.expected {
				t.Errorf("CountTrailingZeroBits(%#x) = %d, expected %d", tt.v, result, tt.expected)
			}
		})
	}
}

func TestCountTrailingZeroBits_EveryPosition(t *testing.T) {
	for i := range WordBits {
		bit := uint32(1) << i
		// Anything above the lowest set bit must not change the count.
		for _, v := range []uint32{bit, bit | bit<<1, bit | 0x80000000, ^(bit - 1)} {
			if got := CountTrailingZeroBits(v); got != i {
				t.Errorf("CountTrailingZeroBits(%#x) = %d, expected %d", v, got, i)
			}
		}
	}
}

func TestCountZeroAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = PopCount(-1)
		_ = CountTrailingZeroBits(1 << 20)
	})

	if allocs > 0 {
		t.Errorf("Expected zero allocations in counting functions, got %.1f", allocs)
	}
}

func BenchmarkPopCount(b *testing.B) {
	var i int32
	b.ReportAllocs()
	for b.Loop() {
		PopCount(i)
		i += 0x01010101
	}
}

func BenchmarkCountTrailingZeroBits(b *testing.B) {
	var i uint32
	b.ReportAllocs()
	for b.Loop() {
		CountTrailingZeroBits(i)
		i++
	}
}
