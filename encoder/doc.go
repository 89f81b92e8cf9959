// Package encoder orchestrates the watermarking pipeline: computing the
// keyed traversal permutation, scattering the secret code into per-pair
// hint bits, embedding hints with difference expansion, and rebuilding the
// code on the receiving side.
//
// Client side:
//
//	prep, err := encoder.Prepare(params, key, zeta, eta)
//	// prep.Params carries the watermark; send it instead of params
//
// Server side:
//
//	built, err := encoder.Build(received, key, eta)
//	res, err  := controller.Verify(built.Graph, zeta)
//	if res.Authentic {
//	    original, err := encoder.Restore(received, built.Perm)
//	    // run protected logic on original
//	}
//
// Both sides derive everything from (key, η, pair count) alone: the
// permutation P over pair indices, the keyed index mapping pair → bit
// position, and the eager coverage check requiring every bit position in
// [0, η) to receive at least one vote. A configuration that fails coverage
// fails identically on both sides, before anything is embedded or decoded.
//
// Code rebuilding is vote-based: each pair votes its hint bit into its
// keyed position. A position with only one-votes yields 1, only zero-votes
// yields 0, and any disagreement resolves through a deterministic keyed
// tie-break. The disagreement trigger is any mix of vote kinds, not an
// exact count tie; tampering that flips a single pair parity therefore
// already perturbs its position.
//
// The MAC behind all keyed derivations is configurable via WithMAC; both
// sides must configure the same one.
package encoder
