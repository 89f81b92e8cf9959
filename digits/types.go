// Package digits defines sentinel errors for digit-array conversions.
package digits

import "errors"

// Sentinel errors for digit conversions.
var (
	// ErrBadBase indicates a base below 2.
	ErrBadBase = errors.New("digits: base must be >= 2")
	// ErrNegative indicates a negative integer where a non-negative one is required.
	ErrNegative = errors.New("digits: value must be non-negative")
	// ErrNilInt indicates a nil *big.Int argument.
	ErrNilInt = errors.New("digits: nil integer")
	// ErrEmptyDigits indicates an empty digit array.
	ErrEmptyDigits = errors.New("digits: digit array must be non-empty")
	// ErrDigitRange indicates a digit outside [0, base).
	ErrDigitRange = errors.New("digits: digit out of range for base")
	// ErrBadLength indicates a requested fixed length that is not positive.
	ErrBadLength = errors.New("digits: length must be > 0")
	// ErrTooWide indicates a value that does not fit the requested fixed length.
	ErrTooWide = errors.New("digits: value does not fit requested length")
)
