package encoder

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/wmark/dexp"
	"github.com/katalvlaran/wmark/digits"
	"github.com/katalvlaran/wmark/wgraph"
)

// chaosLabel formats the keyed tie-break label for bit position j with
// o one-votes and z zero-votes. Shared by both sides through CodeBuilder.
const chaosLabel = "KBit|v1|chaos|j=%d|o=%d|z=%d"

var bigTwo = big.NewInt(2)

// ComputePermutation derives the keyed traversal permutation over pair
// indices and eagerly checks the coverage invariant: every bit position in
// [0, eta) must receive at least one vote through the keyed index mapping.
//
// The check is symmetric — embedding and verification run it identically —
// so a configuration mismatch between eta and the pair count fails the same
// way on both sides.
//
// Returns ErrBadEta, ErrTooFewParams, ErrNotEnoughPairs (wrapped with the
// counts), or ErrCoverage (wrapped with the covered/required counts).
func ComputePermutation(paramsLen int, key []byte, eta int, opts ...Option) ([]int, error) {
	o := gatherOptions(opts)
	if eta <= 0 {
		return nil, ErrBadEta
	}
	if paramsLen < 2 {
		return nil, ErrTooFewParams
	}
	nPairs := paramsLen / 2
	if nPairs < eta {
		return nil, fmt.Errorf("%w: need at least %d pairs, got %d", ErrNotEnoughPairs, eta, nPairs)
	}

	seed := o.MAC.Seed(key)
	perm, err := o.MAC.Permutation(seed, nPairs)
	if err != nil {
		return nil, err
	}

	covered := make(map[int]bool, eta)
	for _, p := range perm {
		j, err := o.MAC.Index(key, p, eta)
		if err != nil {
			return nil, err
		}
		covered[j] = true
	}
	if len(covered) < eta {
		return nil, fmt.Errorf("%w: only %d/%d bit positions receive votes",
			ErrCoverage, len(covered), eta)
	}

	return perm, nil
}

// HintsDetection extracts the hint vector Γ from params: for each pair
// index p in perm, gamma[p] = (x − y) mod 2 with the mathematical
// (non-negative) modulo.
//
// Returns ErrBadPerm if perm addresses a pair outside params.
func HintsDetection(params []*big.Int, perm []int) ([]int, error) {
	nPairs := len(params) / 2
	gamma := make([]int, nPairs)
	d := new(big.Int)
	for _, p := range perm {
		if p < 0 || p >= nPairs {
			return nil, fmt.Errorf("%w: pair %d of %d", ErrBadPerm, p, nPairs)
		}
		d.Sub(params[2*p], params[2*p+1])
		gamma[p] = int(d.Mod(d, bigTwo).Int64())
	}

	return gamma, nil
}

// CodeBuilder rebuilds ζ₂ from the hint vector: each pair p votes its hint
// bit into position j = Index(p, eta); a position with only one-votes
// yields 1, only zero-votes yields 0, and any disagreement resolves via the
// keyed tie-break bit. The coverage invariant guarantees at least one vote
// per position.
//
// Returns ErrBadEta or ErrBadPerm.
func CodeBuilder(gamma []int, eta int, key []byte, perm []int, opts ...Option) ([]int, error) {
	o := gatherOptions(opts)
	if eta <= 0 {
		return nil, ErrBadEta
	}

	ones := make([]int, eta)
	zeros := make([]int, eta)
	for _, p := range perm {
		if p < 0 || p >= len(gamma) {
			return nil, fmt.Errorf("%w: pair %d of %d", ErrBadPerm, p, len(gamma))
		}
		j, err := o.MAC.Index(key, p, eta)
		if err != nil {
			return nil, err
		}
		if gamma[p] == 1 {
			ones[j]++
		} else {
			zeros[j]++
		}
	}

	zeta2 := make([]int, eta)
	for j := 0; j < eta; j++ {
		switch {
		case ones[j] > 0 && zeros[j] == 0:
			zeta2[j] = 1
		case zeros[j] > 0 && ones[j] == 0:
			zeta2[j] = 0
		default:
			// disagreement (or no votes at all): deterministic keyed chaos
			zeta2[j] = o.MAC.Bit(key, fmt.Sprintf(chaosLabel, j, ones[j], zeros[j]))
		}
	}

	return zeta2, nil
}

// Prepare embeds the secret code zeta into params and returns the
// watermarked list together with the permutation and eta (both needed for
// restoration). The input list is not mutated; an unpaired trailing value
// passes through untouched.
//
// ζ₂ is scattered directly: pair p carries bit zeta2[Index(p, eta)], then
// the bit is embedded into the pair via difference expansion.
//
// Returns ErrNegativeCode, the configuration errors of ComputePermutation,
// or digits.ErrTooWide when zeta does not fit in eta bits.
func Prepare(params []*big.Int, key []byte, zeta *big.Int, eta int, opts ...Option) (*Prepared, error) {
	o := gatherOptions(opts)
	if zeta == nil || zeta.Sign() < 0 {
		return nil, ErrNegativeCode
	}

	perm, err := ComputePermutation(len(params), key, eta, opts...)
	if err != nil {
		return nil, err
	}

	zeta2, err := digits.BitsFromInt(zeta, eta)
	if err != nil {
		return nil, err
	}

	// Scatter ζ₂ into Γ: the direct inverse of CodeBuilder's voting.
	nPairs := len(params) / 2
	gamma := make([]int, nPairs)
	for _, p := range perm {
		j, jErr := o.MAC.Index(key, p, eta)
		if jErr != nil {
			return nil, jErr
		}
		gamma[p] = zeta2[j]
	}

	out := make([]*big.Int, len(params))
	copy(out, params)
	for _, p := range perm {
		xe, ye, eErr := dexp.Embed(out[2*p], out[2*p+1], gamma[p])
		if eErr != nil {
			return nil, eErr
		}
		out[2*p], out[2*p+1] = xe, ye
	}

	return &Prepared{Params: out, Perm: perm, Eta: eta}, nil
}

// Build reconstructs the watermark graph from received parameters: detect
// hints, rebuild ζ₂ by voting, convert to ζ₆, and encode the cyclic graph.
//
// Build never judges authenticity — that is the controller's job against
// the expected code.
func Build(received []*big.Int, key []byte, eta int, opts ...Option) (*Built, error) {
	perm, err := ComputePermutation(len(received), key, eta, opts...)
	if err != nil {
		return nil, err
	}

	gamma, err := HintsDetection(received, perm)
	if err != nil {
		return nil, err
	}
	zeta2, err := CodeBuilder(gamma, eta, key, perm, opts...)
	if err != nil {
		return nil, err
	}
	zeta6, err := digits.ConvertBase(zeta2, 2, 6)
	if err != nil {
		return nil, err
	}
	graph, err := wgraph.Encode(zeta6)
	if err != nil {
		return nil, err
	}

	return &Built{Graph: graph, Perm: perm, Eta: eta}, nil
}

// Restore inverts the embedding for every pair in perm and returns the
// original parameter list. The input is not mutated; since perm is always a
// full permutation of pair indices, every pair is restored.
//
// Returns ErrBadPerm if perm addresses a pair outside the list.
func Restore(watermarked []*big.Int, perm []int) ([]*big.Int, error) {
	nPairs := len(watermarked) / 2
	out := make([]*big.Int, len(watermarked))
	copy(out, watermarked)
	for _, p := range perm {
		if p < 0 || p >= nPairs {
			return nil, fmt.Errorf("%w: pair %d of %d", ErrBadPerm, p, nPairs)
		}
		_, x, y, err := dexp.Extract(out[2*p], out[2*p+1])
		if err != nil {
			return nil, err
		}
		out[2*p], out[2*p+1] = x, y
	}

	return out, nil
}
