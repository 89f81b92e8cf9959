// Package keyed defines the MAC function type and sentinel errors.
package keyed

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/blake2b"
)

// Sentinel errors for keyed derivations.
var (
	// ErrBadCount indicates a negative permutation size.
	ErrBadCount = errors.New("keyed: permutation size must be >= 0")
	// ErrBadEta indicates a non-positive index range.
	ErrBadEta = errors.New("keyed: eta must be > 0")
)

// MAC computes a keyed digest of msg. Implementations must be deterministic
// and produce at least 8 bytes of output; the derivations in this package
// consume the first 8 bytes as a big-endian uint64.
//
// A nil MAC is treated as HMACSHA256 by every derivation.
type MAC func(key, msg []byte) []byte

// HMACSHA256 is the default MAC: HMAC with SHA-256 from the standard library.
var HMACSHA256 MAC = func(key, msg []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(msg)

	return h.Sum(nil)
}

// BLAKE2b256 is keyed BLAKE2b-256. BLAKE2b is a native MAC, so no HMAC
// construction is needed. Keys longer than 64 bytes (the BLAKE2b limit)
// are reduced with an unkeyed BLAKE2b-256 pass first.
var BLAKE2b256 MAC = func(key, msg []byte) []byte {
	if len(key) > 64 {
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		// unreachable: the only failure mode is an oversized key
		panic(err)
	}
	h.Write(msg)

	return h.Sum(nil)
}
