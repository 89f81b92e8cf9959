package digits_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wmark/digits"
)

// TestToDigits_Zero verifies that zero converts to the single digit [0].
func TestToDigits_Zero(t *testing.T) {
	ds, err := digits.ToDigits(big.NewInt(0), 6)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, ds)
}

// TestToDigits_KnownValues checks a few hand-computed conversions.
func TestToDigits_KnownValues(t *testing.T) {
	cases := []struct {
		n    int64
		base int
		want []int
	}{
		{5, 2, []int{1, 0, 1}},
		{255, 2, []int{1, 1, 1, 1, 1, 1, 1, 1}},
		{42, 6, []int{1, 1, 0}},
		{1000, 10, []int{1, 0, 0, 0}},
	}
	for _, c := range cases {
		ds, err := digits.ToDigits(big.NewInt(c.n), c.base)
		require.NoError(t, err, "n=%d base=%d", c.n, c.base)
		assert.Equal(t, c.want, ds, "n=%d base=%d", c.n, c.base)
	}
}

// TestToDigits_Errors exercises the validation paths.
func TestToDigits_Errors(t *testing.T) {
	_, err := digits.ToDigits(big.NewInt(5), 1)
	assert.ErrorIs(t, err, digits.ErrBadBase, "base<2 must error")

	_, err = digits.ToDigits(nil, 2)
	assert.ErrorIs(t, err, digits.ErrNilInt, "nil input must error")

	_, err = digits.ToDigits(big.NewInt(-1), 2)
	assert.ErrorIs(t, err, digits.ErrNegative, "negative input must error")
}

// TestFromDigits_Inverse verifies FromDigits inverts ToDigits for large values.
func TestFromDigits_Inverse(t *testing.T) {
	n := new(big.Int)
	n.SetString("123456789012345678901234567890", 10)
	for _, base := range []int{2, 6, 10, 16} {
		ds, err := digits.ToDigits(n, base)
		require.NoError(t, err)
		back, err := digits.FromDigits(ds, base)
		require.NoError(t, err)
		assert.Zero(t, n.Cmp(back), "base %d round trip", base)
	}
}

// TestFromDigits_Errors exercises the validation paths.
func TestFromDigits_Errors(t *testing.T) {
	_, err := digits.FromDigits(nil, 6)
	assert.ErrorIs(t, err, digits.ErrEmptyDigits, "empty array must error")

	_, err = digits.FromDigits([]int{1, 6, 0}, 6)
	assert.ErrorIs(t, err, digits.ErrDigitRange, "digit==base must error")

	_, err = digits.FromDigits([]int{-1}, 6)
	assert.ErrorIs(t, err, digits.ErrDigitRange, "negative digit must error")

	_, err = digits.FromDigits([]int{0}, 0)
	assert.ErrorIs(t, err, digits.ErrBadBase, "base<2 must error")
}

// TestBitsFromInt_Padding verifies the fixed-length, left-padded layout.
func TestBitsFromInt_Padding(t *testing.T) {
	bits, err := digits.BitsFromInt(big.NewInt(5), 8)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 1, 0, 1}, bits)

	back, err := digits.IntFromBits(bits)
	require.NoError(t, err)
	assert.EqualValues(t, 5, back.Int64())
}

// TestBitsFromInt_Errors exercises eta validation and the overflow guard.
func TestBitsFromInt_Errors(t *testing.T) {
	_, err := digits.BitsFromInt(big.NewInt(1), 0)
	assert.ErrorIs(t, err, digits.ErrBadLength, "eta<=0 must error")

	_, err = digits.BitsFromInt(big.NewInt(256), 8)
	assert.ErrorIs(t, err, digits.ErrTooWide, "value too wide for eta must error")
}

// TestConvertBase_RoundTrip verifies base-2 → base-6 → base-2 stability
// (modulo leading zeros).
func TestConvertBase_RoundTrip(t *testing.T) {
	bits := []int{1, 0, 1, 1, 0, 1, 0, 0, 1}
	ds6, err := digits.ConvertBase(bits, 2, 6)
	require.NoError(t, err)

	back, err := digits.ConvertBase(ds6, 6, 2)
	require.NoError(t, err)

	want, err := digits.FromDigits(bits, 2)
	require.NoError(t, err)
	got, err := digits.FromDigits(back, 2)
	require.NoError(t, err)
	assert.Zero(t, want.Cmp(got))
}
