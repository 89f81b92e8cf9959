package controller

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/wmark/digits"
	"github.com/katalvlaran/wmark/wgraph"
)

// ErrNegativeCode indicates a negative or missing expected code.
var ErrNegativeCode = errors.New("controller: expected code must be non-negative")

// Result is the structured verification outcome.
//
// Authentic is true iff the decoded code equals the expected one exactly.
// Code and Code6 carry the recovered value and its base-6 digits when
// decoding succeeded; Err carries the structural decode failure when it
// did not (in which case Authentic is false and Code/Code6 are nil).
type Result struct {
	Authentic bool
	Code      *big.Int
	Code6     []int
	Err       error
}

// Verify decodes the code carried by g and compares it against expected.
//
// The node count μ is derived from expected's base-6 digit length. Any
// decode failure is folded into a non-authentic Result rather than
// returned; the error return fires only for expected < 0 or nil.
func Verify(g *wgraph.Graph, expected *big.Int) (Result, error) {
	if expected == nil || expected.Sign() < 0 {
		return Result{}, ErrNegativeCode
	}

	expected6, err := digits.ToDigits(expected, 6)
	if err != nil {
		return Result{}, err
	}
	mu := len(expected6)

	code6, err := wgraph.Decode(g, mu)
	if err != nil {
		return Result{Authentic: false, Err: err}, nil
	}
	code, err := digits.FromDigits(code6, 6)
	if err != nil {
		// decoded digits outside base 6: corrupt structure, not authentic
		return Result{Authentic: false, Err: err}, nil
	}

	return Result{
		Authentic: code.Cmp(expected) == 0,
		Code:      code,
		Code6:     code6,
	}, nil
}
