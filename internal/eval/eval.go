// SPDX-License-Identifier: MIT
//
// Package eval exposes the bitint functions by name so the command line,
// the WebSocket endpoint and the inspector can call them with string
// arguments. Preconditions the library leaves to the caller are checked here,
// so evaluating never panics.
package eval

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"bithacks/pkg/bitint"
)

// Kind describes the width and signedness of an argument or result.
type Kind int

const (
	KindInt32 Kind = iota
	KindUint32
	KindUint16
	KindUint8
	KindBool  // result only
	KindCount // result only, 0..32
	KindPair  // result only, two uint16
)

// String returns the Go type name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindUint16:
		return "uint16"
	case KindUint8:
		return "uint8"
	case KindBool:
		return "bool"
	case KindCount:
		return "int"
	case KindPair:
		return "(uint16, uint16)"
	default:
		return "unknown"
	}
}

// Op is one named library operation.
type Op struct {
	Name    string
	Aliases []string
	Args    []Kind
	Result  Kind
	Help    string

	// call receives arguments already parsed and range-checked for Args.
	call func(args []int64) (Result, error)
}

// Signature renders the operation like a Go function header.
func (op *Op) Signature() string {
	args := make([]string, len(op.Args))
	for i, k := range op.Args {
		args[i] = k.String()
	}
	return fmt.Sprintf("%s(%s) %s", op.Name, strings.Join(args, ", "), op.Result)
}

// Result is the outcome of one evaluation.
type Result struct {
	Op     string
	Args   []int64
	Kind   Kind
	Values []int64 // one value; two for KindPair

	// Caveat is set when the inputs are outside the range where the
	// underlying trick is exact; the value is still the library's answer.
	Caveat string
}

// Bool returns the result of a KindBool operation.
func (r Result) Bool() bool {
	return r.Kind == KindBool && len(r.Values) == 1 && r.Values[0] != 0
}

func boolResult(b bool) Result {
	if b {
		return Result{Kind: KindBool, Values: []int64{1}}
	}
	return Result{Kind: KindBool, Values: []int64{0}}
}

func valueResult(kind Kind, v int64) Result {
	return Result{Kind: kind, Values: []int64{v}}
}

var (
	catalogue = []*Op{
		{
			Name:    "has_opposite_signs",
			Aliases: []string{"signs", "opposite"},
			Args:    []Kind{KindInt32, KindInt32},
			Result:  KindBool,
			Help:    "true if x and y have different sign bits",
			call: func(a []int64) (Result, error) {
				return boolResult(bitint.HasOppositeSigns(int32(a[0]), int32(a[1]))), nil
			},
		},
		{
			Name:    "is_power_of_2",
			Aliases: []string{"pow2", "ispow2"},
			Args:    []Kind{KindInt32},
			Result:  KindBool,
			Help:    "true if exactly one bit is set",
			call: func(a []int64) (Result, error) {
				return boolResult(bitint.IsPowerOf2(int32(a[0]))), nil
			},
		},
		{
			Name:    "pop_count",
			Aliases: []string{"popcount", "popcnt"},
			Args:    []Kind{KindInt32},
			Result:  KindCount,
			Help:    "number of set bits",
			call: func(a []int64) (Result, error) {
				return valueResult(KindCount, int64(bitint.PopCount(int32(a[0])))), nil
			},
		},
		{
			Name:    "count_trailing_zero_bits",
			Aliases: []string{"ctz"},
			Args:    []Kind{KindUint32},
			Result:  KindCount,
			Help:    "number of trailing zero bits, 32 for 0",
			call: func(a []int64) (Result, error) {
				return valueResult(KindCount, int64(bitint.CountTrailingZeroBits(uint32(a[0])))), nil
			},
		},
		{
			Name:    "interleave_bits",
			Aliases: []string{"interleave", "morton"},
			Args:    []Kind{KindUint16, KindUint16},
			Result:  KindUint32,
			Help:    "Morton code: x bits at even positions, y bits at odd",
			call: func(a []int64) (Result, error) {
				return valueResult(KindUint32, int64(bitint.InterleaveBits(uint16(a[0]), uint16(a[1])))), nil
			},
		},
		{
			Name:    "deinterleave_bits",
			Aliases: []string{"deinterleave", "unmorton"},
			Args:    []Kind{KindUint32},
			Result:  KindPair,
			Help:    "split a Morton code into x and y",
			call: func(a []int64) (Result, error) {
				x, y := bitint.DeinterleaveBits(uint32(a[0]))
				return Result{Kind: KindPair, Values: []int64{int64(x), int64(y)}}, nil
			},
		},
		{
			Name:    "has_zero_byte",
			Aliases: []string{"zerobyte"},
			Args:    []Kind{KindUint32},
			Result:  KindBool,
			Help:    "true if any byte lane is 0",
			call: func(a []int64) (Result, error) {
				return boolResult(bitint.HasZeroByte(uint32(a[0]))), nil
			},
		},
		{
			Name:    "has_value",
			Aliases: []string{"hasvalue"},
			Args:    []Kind{KindUint32, KindUint8},
			Result:  KindBool,
			Help:    "true if any byte lane equals n",
			call: func(a []int64) (Result, error) {
				return boolResult(bitint.HasValue(uint32(a[0]), uint8(a[1]))), nil
			},
		},
		{
			Name:    "has_greater",
			Aliases: []string{"hasgreater", "hasmore"},
			Args:    []Kind{KindUint32, KindUint8},
			Result:  KindBool,
			Help:    "true if any byte lane is greater than n (exact for n <= 127)",
			call: func(a []int64) (Result, error) {
				r := boolResult(bitint.HasGreater(uint32(a[0]), uint8(a[1])))
				if a[1] > 127 {
					r.Caveat = "n > 127: the lane bias wraps and the answer is not exact"
				}
				return r, nil
			},
		},
		{
			Name:    "has_less",
			Aliases: []string{"hasless"},
			Args:    []Kind{KindUint32, KindUint8},
			Result:  KindBool,
			Help:    "true if any byte lane is less than n (exact for n <= 128)",
			call: func(a []int64) (Result, error) {
				r := boolResult(bitint.HasLess(uint32(a[0]), uint8(a[1])))
				if a[1] > 128 {
					r.Caveat = "n > 128: lanes with the high bit set are not reported"
				}
				return r, nil
			},
		},
		{
			Name:    "next_permutation",
			Aliases: []string{"nextperm", "perm"},
			Args:    []Kind{KindUint32},
			Result:  KindUint32,
			Help:    "next larger word with the same number of set bits (v != 0)",
			call: func(a []int64) (Result, error) {
				v := uint32(a[0])
				if v == 0 {
					return Result{}, fmt.Errorf("%w: next_permutation requires a non-zero word", ErrPrecondition)
				}
				r := valueResult(KindUint32, int64(bitint.NextPermutation(v)))
				if _, ok := bitint.NextPermutationOK(v); !ok {
					r.Caveat = "last permutation of its population: the result wrapped"
				}
				return r, nil
			},
		},
		{
			Name:    "next_power_of_two",
			Aliases: []string{"nextpow2"},
			Args:    []Kind{KindInt32},
			Result:  KindInt32,
			Help:    "smallest power of two >= x, 1 for x <= 0",
			call: func(a []int64) (Result, error) {
				r := valueResult(KindInt32, int64(bitint.NextPowerOfTwo32(int32(a[0]))))
				if a[0] > 1<<30 {
					r.Caveat = "x > 2^30: the result overflowed int32"
				}
				return r, nil
			},
		},
		{
			Name:    "broadcast",
			Aliases: []string{"splat"},
			Args:    []Kind{KindUint8},
			Result:  KindUint32,
			Help:    "replicate a byte into all four lanes",
			call: func(a []int64) (Result, error) {
				return valueResult(KindUint32, int64(bitint.Broadcast(uint8(a[0])))), nil
			},
		},
	}

	byName = indexCatalogue(catalogue)
)

func indexCatalogue(ops []*Op) map[string]*Op {
	m := make(map[string]*Op, len(ops)*3)
	for _, op := range ops {
		for _, name := range append([]string{op.Name}, op.Aliases...) {
			if _, dup := m[name]; dup {
				panic("eval: duplicate operation name " + name)
			}
			m[name] = op
		}
	}
	return m
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

// Lookup finds an operation by canonical name or alias, case-insensitively.
// Dashes and underscores are interchangeable.
func Lookup(name string) (*Op, error) {
	op, ok := byName[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	return op, nil
}

// Ops returns the catalogue sorted by name.
func Ops() []*Op {
	ops := make([]*Op, len(catalogue))
	copy(ops, catalogue)
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}

// Evaluate parses args for the named operation and runs it.
func Evaluate(name string, args []string) (Result, error) {
	op, err := Lookup(name)
	if err != nil {
		return Result{}, err
	}
	return op.Evaluate(args)
}

// Evaluate parses args for op and runs it.
func (op *Op) Evaluate(args []string) (Result, error) {
	if len(args) != len(op.Args) {
		return Result{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op.Name, len(op.Args), len(args))
	}
	parsed := make([]int64, len(args))
	for i, s := range args {
		v, err := ParseArg(s, op.Args[i])
		if err != nil {
			return Result{}, fmt.Errorf("%s argument %d: %w", op.Name, i+1, err)
		}
		parsed[i] = v
	}
	r, err := op.call(parsed)
	if err != nil {
		return Result{}, err
	}
	r.Op = op.Name
	r.Args = parsed
	return r, nil
}

// ParseArg parses s as an integer of the given kind. Go integer literal
// syntax is accepted (0x, 0b, 0o prefixes and underscores). int32 arguments
// also accept an unsigned 32-bit pattern, so 0xffffffff is -1. uint8
// arguments also accept a quoted character such as 'a' or '\n'.
func ParseArg(s string, k Kind) (int64, error) {
	s = strings.TrimSpace(s)
	switch k {
	case KindInt32:
		v, err := strconv.ParseInt(s, 0, 32)
		if err == nil {
			return v, nil
		}
		if u, uerr := strconv.ParseUint(s, 0, 32); uerr == nil {
			return int64(int32(uint32(u))), nil
		}
		return 0, fmt.Errorf("%w: %q is not an int32: %v", ErrArgument, s, err)
	case KindUint32, KindUint16, KindUint8:
		if k == KindUint8 && strings.HasPrefix(s, "'") {
			return parseChar(s)
		}
		u, err := strconv.ParseUint(s, 0, bitSize(k))
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a %s: %v", ErrArgument, s, k, err)
		}
		return int64(u), nil
	default:
		return 0, fmt.Errorf("%w: %s is not an argument kind", ErrArgument, k)
	}
}

func parseChar(s string) (int64, error) {
	c, err := strconv.Unquote(s)
	if err != nil || len(c) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single byte character", ErrArgument, s)
	}
	return int64(c[0]), nil
}

func bitSize(k Kind) int {
	switch k {
	case KindUint8:
		return 8
	case KindUint16:
		return 16
	default:
		return 32
	}
}

// maxValue is the largest value an unsigned kind holds.
func maxValue(k Kind) uint64 {
	switch k {
	case KindUint8:
		return math.MaxUint8
	case KindUint16:
		return math.MaxUint16
	default:
		return math.MaxUint32
	}
}
