// Package digits converts non-negative integers to and from positional
// digit arrays in arbitrary bases (big-endian, most significant digit first).
//
// The watermarking pipeline uses two derived representations of the secret
// code ζ:
//
//	ζ₂ — fixed-length bit array of length η (BitsFromInt)
//	ζ₆ — base-6 digit array of derived length μ (ToDigits / ConvertBase)
//
// All conversions operate on *big.Int so arbitrarily large codes and
// parameters round-trip without overflow. Every function validates its
// inputs and returns a sentinel error from types.go; none panic.
package digits
