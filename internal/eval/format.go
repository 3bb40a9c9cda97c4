package eval

import (
	"fmt"
	"strconv"
	"strings"
)

// Format selects how word results are written.
type Format string

const (
	Dec Format = "dec"
	Hex Format = "hex"
	Bin Format = "bin"
)

// ParseFormat accepts dec, hex or bin in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Dec, Hex, Bin:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, s)
}

// Render writes the result value. Booleans and counts ignore the format;
// words are padded to min(width, natural width of the kind) bits for hex
// and bin. Pairs are written as "x y".
func (r Result) Render(f Format, width int) string {
	if len(r.Values) == 0 {
		return ""
	}
	switch r.Kind {
	case KindBool:
		return strconv.FormatBool(r.Values[0] != 0)
	case KindCount:
		return strconv.FormatInt(r.Values[0], 10)
	case KindInt32:
		if f == Dec {
			return strconv.FormatInt(r.Values[0], 10)
		}
		return FormatWord(uint64(uint32(r.Values[0])), f, min(width, 32))
	case KindPair:
		parts := make([]string, len(r.Values))
		for i, v := range r.Values {
			parts[i] = FormatWord(uint64(v), f, min(width, 16))
		}
		return strings.Join(parts, " ")
	default:
		v := uint64(r.Values[0]) & maxValue(r.Kind)
		return FormatWord(v, f, min(width, bitSize(r.Kind)))
	}
}

// FormatWord writes v in the given format, zero padded to width bits.
func FormatWord(v uint64, f Format, width int) string {
	switch f {
	case Hex:
		return fmt.Sprintf("0x%0*x", (width+3)/4, v)
	case Bin:
		return fmt.Sprintf("0b%0*b", width, v)
	default:
		return strconv.FormatUint(v, 10)
	}
}

// GroupBits writes the low width bits of v most significant first, with a
// space between byte lanes: "00000001 00000010 ...".
func GroupBits(v uint32, width int) string {
	var sb strings.Builder
	for i := width - 1; i >= 0; i-- {
		if v>>i&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i > 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
