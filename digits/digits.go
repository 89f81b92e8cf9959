package digits

import (
	"fmt"
	"math/big"
)

// ToDigits converts a non-negative integer n to its big-endian digit array
// in the given base. Zero converts to [0].
//
// Returns ErrBadBase if base < 2, ErrNilInt if n is nil,
// ErrNegative if n < 0.
//
// Complexity: O(log_base n) divisions.
func ToDigits(n *big.Int, base int) ([]int, error) {
	if base < 2 {
		return nil, ErrBadBase
	}
	if n == nil {
		return nil, ErrNilInt
	}
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	if n.Sign() == 0 {
		return []int{0}, nil
	}

	var (
		rest = new(big.Int).Set(n)
		rad  = big.NewInt(int64(base))
		rem  = new(big.Int)
		out  []int
	)
	for rest.Sign() > 0 {
		rest.QuoRem(rest, rad, rem)
		out = append(out, int(rem.Int64()))
	}
	// digits were produced least-significant first; reverse to big-endian
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out, nil
}

// FromDigits converts a big-endian digit array in the given base back to an
// integer. It is the exact inverse of ToDigits.
//
// Returns ErrBadBase if base < 2, ErrEmptyDigits on empty input, and
// ErrDigitRange (wrapped with the offending digit) if any digit falls
// outside [0, base).
func FromDigits(ds []int, base int) (*big.Int, error) {
	if base < 2 {
		return nil, ErrBadBase
	}
	if len(ds) == 0 {
		return nil, ErrEmptyDigits
	}

	var (
		n   = new(big.Int)
		rad = big.NewInt(int64(base))
	)
	for _, d := range ds {
		if d < 0 || d >= base {
			return nil, fmt.Errorf("%w: digit %d in base %d", ErrDigitRange, d, base)
		}
		n.Mul(n, rad)
		n.Add(n, big.NewInt(int64(d)))
	}

	return n, nil
}

// BitsFromInt converts n to a fixed-length big-endian bit array of length eta,
// zero-padded on the left.
//
// Returns ErrBadLength if eta <= 0 and ErrTooWide if n needs more than eta
// bits. Other input errors propagate from ToDigits.
func BitsFromInt(n *big.Int, eta int) ([]int, error) {
	if eta <= 0 {
		return nil, ErrBadLength
	}
	bits, err := ToDigits(n, 2)
	if err != nil {
		return nil, err
	}
	if len(bits) > eta {
		return nil, fmt.Errorf("%w: need %d bits, have %d", ErrTooWide, len(bits), eta)
	}

	out := make([]int, eta)
	copy(out[eta-len(bits):], bits)

	return out, nil
}

// IntFromBits converts a big-endian bit array back to an integer.
func IntFromBits(bits []int) (*big.Int, error) {
	return FromDigits(bits, 2)
}

// ConvertBase re-expresses a big-endian digit array from one base in another,
// round-tripping through an integer intermediate. Leading zeros of the input
// are not preserved: the result has the minimal length for the value.
func ConvertBase(ds []int, baseFrom, baseTo int) ([]int, error) {
	n, err := FromDigits(ds, baseFrom)
	if err != nil {
		return nil, err
	}

	return ToDigits(n, baseTo)
}
