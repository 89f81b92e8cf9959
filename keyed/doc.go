// Package keyed provides deterministic keyed pseudorandom derivations:
// seed material, unbiased permutations, unbiased index mapping, and
// single-bit tie-breaks.
//
// All derivations are pure functions of (key, label, counter) driven by a
// keyed cryptographic hash (a secret-keyed MAC) truncated to its first
// 8 bytes, interpreted as a big-endian uint64. Two MACs ship with the
// package:
//
//   - HMACSHA256 — the default, crypto/hmac over crypto/sha256
//   - BLAKE2b256 — keyed BLAKE2b-256 via golang.org/x/crypto/blake2b
//
// Both sides of a watermarking exchange must use the same MAC; the choice
// is configuration, not negotiation.
//
// Bounded-range draws (Permutation, Index) use rejection sampling: a draw
// is rejected when it falls at or above the largest multiple of the range
// size below 2⁶⁴, which removes modulo bias. The rejection probability is
// always below 0.5, so expected work per draw is O(1).
//
// Determinism contract: Permutation threads one counter across the entire
// Fisher–Yates run, while Index uses a counter local to each call. Both
// orderings are part of the derivation and must not change.
package keyed
