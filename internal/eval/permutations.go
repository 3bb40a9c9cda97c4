package eval

import (
	"fmt"

	"bithacks/pkg/bitint"

	"gonum.org/v1/gonum/stat/combin"
)

// Listing is the result of Permutations.
type Listing struct {
	Width     int
	Ones      int
	Words     []uint32 // ascending
	Total     int      // C(Width, Ones)
	Truncated bool     // Words holds only the first limit of Total
}

// PermutationCount returns how many width-bit words have k bits set.
func PermutationCount(width, k int) (int, error) {
	if err := checkPermutationArgs(width, k); err != nil {
		return 0, err
	}
	return combin.Binomial(width, k), nil
}

// Permutations lists every width-bit word with k bits set, in ascending
// order, stopping after limit words. The walk starts at the k lowest bits
// and steps with bitint.NextPermutation until the word no longer fits in
// width bits.
func Permutations(width, k, limit int) (Listing, error) {
	total, err := PermutationCount(width, k)
	if err != nil {
		return Listing{}, err
	}
	if limit <= 0 {
		return Listing{}, fmt.Errorf("%w: limit must be positive, got %d", ErrArgument, limit)
	}

	l := Listing{Width: width, Ones: k, Total: total}
	l.Words = make([]uint32, 0, listingCapacity(total, limit))
	if k == 0 {
		l.Words = append(l.Words, 0)
		return l, nil
	}

	bound := uint64(1) << width
	v := uint32(uint64(1)<<k - 1)
	for uint64(v) < bound {
		if len(l.Words) == limit {
			l.Truncated = true
			break
		}
		l.Words = append(l.Words, v)
		next, ok := bitint.NextPermutationOK(v)
		if !ok {
			break
		}
		v = next
	}

	if !l.Truncated && len(l.Words) != total {
		return Listing{}, fmt.Errorf("permutation walk produced %d words, expected C(%d, %d) = %d",
			len(l.Words), width, k, total)
	}
	return l, nil
}

// maxPreallocWords bounds the up-front allocation of a listing; larger
// listings grow as words are produced.
const maxPreallocWords = 4096

func listingCapacity(total, limit int) int {
	return min(total, limit, maxPreallocWords)
}

func checkPermutationArgs(width, k int) error {
	if width < 1 || width > bitint.WordBits {
		return fmt.Errorf("%w: width %d must be between 1 and %d", ErrArgument, width, bitint.WordBits)
	}
	if k < 0 || k > width {
		return fmt.Errorf("%w: ones %d must be between 0 and width %d", ErrArgument, k, width)
	}
	return nil
}
