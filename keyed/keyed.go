package keyed

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Derivation labels. These are shared constants between the embedding and
// verification sides; changing any of them changes every derived value.
const (
	seedLabel  = "PRNG|v1"
	permLabel  = "perm|KPerm|v1|i=%d|c=%d"
	indexLabel = "KInd|v1|p=%d|c=%d"
)

// Sum64 derives a uint64 from mac(key, label): the first 8 bytes of the
// digest interpreted as a big-endian unsigned value.
func (mac MAC) Sum64(key []byte, label string) uint64 {
	if mac == nil {
		mac = HMACSHA256
	}

	return binary.BigEndian.Uint64(mac(key, []byte(label)))
}

// Seed derives deterministic seed material from the secret key. The result
// keys the MAC inside Permutation and is used nowhere else.
func (mac MAC) Seed(key []byte) []byte {
	if mac == nil {
		mac = HMACSHA256
	}

	return mac(key, []byte(seedLabel))
}

// maxAccept returns the largest draw value accepted for an unbiased
// reduction mod m: draws above the largest multiple of m below 2⁶⁴ are
// rejected. Written as MaxUint64 − (2⁶⁴ mod m) so it cannot overflow.
func maxAccept(m uint64) uint64 {
	rem := (math.MaxUint64%m + 1) % m // 2⁶⁴ mod m

	return math.MaxUint64 - rem
}

// Permutation derives a Fisher–Yates permutation of [0..n) from the seed.
//
// For each i from 0 to n−2 it draws j ∈ [0, i] by hashing (label, i, c),
// rejecting biased values, and swaps positions i and j. The counter c runs
// across the entire shuffle, not per position; this exact threading is part
// of the derivation.
//
// Returns ErrBadCount if n < 0.
//
// Complexity: expected O(n) draws (rejection probability < 0.5 per draw).
func (mac MAC) Permutation(seed []byte, n int) ([]int, error) {
	if n < 0 {
		return nil, ErrBadCount
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	c := 0
	for i := 0; i < n-1; i++ {
		m := uint64(i + 1)
		accept := maxAccept(m)
		for {
			r := mac.Sum64(seed, fmt.Sprintf(permLabel, i, c))
			c++
			if r <= accept {
				j := int(r % m)
				perm[i], perm[j] = perm[j], perm[i]

				break
			}
		}
	}

	return perm, nil
}

// Index maps a pair index p to a bit position in [0, eta) using the same
// rejection-sampling technique as Permutation, with a counter local to
// this call.
//
// Returns ErrBadEta if eta <= 0.
func (mac MAC) Index(key []byte, p, eta int) (int, error) {
	if eta <= 0 {
		return 0, ErrBadEta
	}

	m := uint64(eta)
	accept := maxAccept(m)
	for c := 0; ; c++ {
		r := mac.Sum64(key, fmt.Sprintf(indexLabel, p, c))
		if r <= accept {
			return int(r % m), nil
		}
	}
}

// Bit derives a single deterministic bit from (key, label): the truncated
// digest reduced mod 2. Used only as a tie-break, never as primary logic.
func (mac MAC) Bit(key []byte, label string) int {
	return int(mac.Sum64(key, label) % 2)
}
