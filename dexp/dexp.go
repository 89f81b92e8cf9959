package dexp

import (
	"errors"
	"math/big"
)

// Sentinel errors for difference expansion.
var (
	// ErrBadBit indicates an embedded bit outside {0, 1}.
	ErrBadBit = errors.New("dexp: bit must be 0 or 1")
	// ErrNilInt indicates a nil *big.Int argument.
	ErrNilInt = errors.New("dexp: nil integer")
)

var two = big.NewInt(2)

// floorHalf returns ⌊n/2⌋. big.Int.Div is Euclidean division, which for a
// positive divisor coincides with floor division for either sign of n.
func floorHalf(n *big.Int) *big.Int {
	return new(big.Int).Div(n, two)
}

// ceilHalf returns ⌈n/2⌉ via the identity ⌈n/2⌉ = −⌊−n/2⌋.
func ceilHalf(n *big.Int) *big.Int {
	neg := new(big.Int).Neg(n)
	neg.Div(neg, two)

	return neg.Neg(neg)
}

// Embed hides bit inside the pair (x, y) and returns the modified pair.
// The inputs are not mutated.
//
// Returns ErrBadBit for a bit outside {0, 1} and ErrNilInt for nil inputs.
func Embed(x, y *big.Int, bit int) (*big.Int, *big.Int, error) {
	if x == nil || y == nil {
		return nil, nil, ErrNilInt
	}
	if bit != 0 && bit != 1 {
		return nil, nil, ErrBadBit
	}

	d := new(big.Int).Sub(x, y)
	a := floorHalf(new(big.Int).Add(x, y))

	// d′ = 2·d + bit
	d.Lsh(d, 1)
	d.Add(d, big.NewInt(int64(bit)))

	xe := new(big.Int).Add(a, ceilHalf(d))
	ye := new(big.Int).Sub(a, floorHalf(d))

	return xe, ye, nil
}

// Extract recovers the embedded bit and the original pair from (xe, ye).
// It is the exact two-sided inverse of Embed. The inputs are not mutated.
func Extract(xe, ye *big.Int) (int, *big.Int, *big.Int, error) {
	if xe == nil || ye == nil {
		return 0, nil, nil, ErrNilInt
	}

	dp := new(big.Int).Sub(xe, ye)
	// big.Int.Mod is the mathematical modulo: non-negative for divisor 2.
	bit := int(new(big.Int).Mod(dp, two).Int64())

	d := floorHalf(dp)
	a := floorHalf(new(big.Int).Add(xe, ye))

	x := new(big.Int).Add(a, ceilHalf(d))
	y := new(big.Int).Sub(a, floorHalf(d))

	return bit, x, y, nil
}
