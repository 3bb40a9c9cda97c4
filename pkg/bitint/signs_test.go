// SPDX-License-Identifier: MIT
package bitint

import (
	"fmt"
	"math"
	"testing"
)

func TestHasOppositeSigns(t *testing.T) {
	tests := []struct {
		x, y     int32
		expected bool
	}{
		{5, -3, true},
		{5, 3, false},
		{-5, -3, false},
		{0, -1, true}, // Zero is non-negative
		{0, -5, true}, // Zero is non-negative
		{-1, 0, true}, // Order does not matter
		{0, 0, false}, // Both non-negative
		{math.MinInt32, math.MaxInt32, true},
		{math.MinInt32, -1, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d,%d→%t", tt.x, tt.y, tt.expected), func(t *testing.T) {
			result := HasOppositeSigns(tt.x, tt.y)
			if result != tt.expected {
				t.Errorf("HasOppositeSigns(%d, %d) = %v, expected %v", tt.x, tt.y, result, tt.expected)
			}
		})
	}
}

func BenchmarkHasOppositeSigns(b *testing.B) {
	var i int32
	b.ReportAllocs()
	for b.Loop() {
		HasOppositeSigns(i, -i)
		i++
	}
}
