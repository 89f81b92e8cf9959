package controller_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wmark/controller"
	"github.com/katalvlaran/wmark/digits"
	"github.com/katalvlaran/wmark/wgraph"
)

// encodeCode builds the watermark graph carrying the base-6 form of code.
func encodeCode(t *testing.T, code int64) *wgraph.Graph {
	t.Helper()
	zeta6, err := digits.ToDigits(big.NewInt(code), 6)
	require.NoError(t, err)
	g, err := wgraph.Encode(zeta6)
	require.NoError(t, err)

	return g
}

// TestVerify_Authentic verifies an intact graph matches its own code.
func TestVerify_Authentic(t *testing.T) {
	g := encodeCode(t, 424242)

	res, err := controller.Verify(g, big.NewInt(424242))
	require.NoError(t, err)
	assert.True(t, res.Authentic)
	assert.NoError(t, res.Err)
	require.NotNil(t, res.Code)
	assert.EqualValues(t, 424242, res.Code.Int64())

	want, err := digits.ToDigits(big.NewInt(424242), 6)
	require.NoError(t, err)
	assert.Equal(t, want, res.Code6)
}

// TestVerify_Mismatch verifies that a decodable graph carrying the wrong
// code is non-authentic without any error — a normal outcome.
func TestVerify_Mismatch(t *testing.T) {
	g := encodeCode(t, 424242)

	res, err := controller.Verify(g, big.NewInt(424243))
	require.NoError(t, err)
	assert.False(t, res.Authentic)
	assert.NoError(t, res.Err, "a clean mismatch is not an error")
	require.NotNil(t, res.Code)
	assert.EqualValues(t, 424242, res.Code.Int64(), "recovered code is still reported")
}

// TestVerify_StructuralFailure verifies a broken ring folds into a
// non-authentic result carrying the decode error, never a returned error.
func TestVerify_StructuralFailure(t *testing.T) {
	g := encodeCode(t, 424242)
	g.Nodes[1].Next = wgraph.None

	res, err := controller.Verify(g, big.NewInt(424242))
	require.NoError(t, err, "structural failures must not propagate")
	assert.False(t, res.Authentic)
	assert.ErrorIs(t, res.Err, wgraph.ErrBrokenRing)
	assert.Nil(t, res.Code)
	assert.Nil(t, res.Code6)
}

// TestVerify_ZeroCode verifies ζ = 0 (single node, digit 0) round-trips.
func TestVerify_ZeroCode(t *testing.T) {
	g := encodeCode(t, 0)

	res, err := controller.Verify(g, big.NewInt(0))
	require.NoError(t, err)
	assert.True(t, res.Authentic)
}

// TestVerify_Errors exercises the fail-fast configuration checks.
func TestVerify_Errors(t *testing.T) {
	g := encodeCode(t, 7)

	_, err := controller.Verify(g, big.NewInt(-1))
	assert.ErrorIs(t, err, controller.ErrNegativeCode)

	_, err = controller.Verify(g, nil)
	assert.ErrorIs(t, err, controller.ErrNegativeCode)
}
