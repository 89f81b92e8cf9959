// Package encoder defines options, result carriers, and sentinel errors
// for the watermark embedding/rebuilding pipeline.
package encoder

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/wmark/keyed"
	"github.com/katalvlaran/wmark/wgraph"
)

// Sentinel errors for the encoding pipeline.
var (
	// ErrTooFewParams indicates fewer than 2 parameters (no complete pair).
	ErrTooFewParams = errors.New("encoder: need at least 2 parameters (one pair)")
	// ErrNotEnoughPairs indicates fewer pairs than eta vote slots.
	ErrNotEnoughPairs = errors.New("encoder: not enough parameter pairs for eta")
	// ErrCoverage indicates that fewer than eta distinct bit positions
	// receive votes through the keyed index mapping.
	ErrCoverage = errors.New("encoder: insufficient keyed-index coverage")
	// ErrBadEta indicates a non-positive eta.
	ErrBadEta = errors.New("encoder: eta must be > 0")
	// ErrNegativeCode indicates a negative (or missing) secret code.
	ErrNegativeCode = errors.New("encoder: zeta must be non-negative")
	// ErrBadPerm indicates a permutation entry addressing a pair outside
	// the parameter list.
	ErrBadPerm = errors.New("encoder: permutation index out of range")
)

// Option configures the pipeline via functional arguments.
type Option func(*Options)

// Options holds pipeline configuration. The zero MAC means HMAC-SHA256.
type Options struct {
	// MAC is the keyed hash behind every derivation. Both the embedding
	// and the verification side must use the same MAC.
	MAC keyed.MAC
}

// DefaultOptions returns Options with the default MAC (HMAC-SHA256).
func DefaultOptions() Options {
	return Options{MAC: keyed.HMACSHA256}
}

// WithMAC selects the keyed hash used for all derivations.
// A nil argument keeps the default.
func WithMAC(mac keyed.MAC) Option {
	return func(o *Options) {
		if mac != nil {
			o.MAC = mac
		}
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.MAC == nil {
		o.MAC = keyed.HMACSHA256
	}

	return o
}

// Prepared is the client-side output: a parameter list carrying embedded
// hints, plus the permutation and eta needed for restoration.
type Prepared struct {
	Params []*big.Int
	Perm   []int
	Eta    int
}

// Built is the server-side output: the reconstructed watermark graph plus
// the permutation and eta used to build it.
type Built struct {
	Graph *wgraph.Graph
	Perm  []int
	Eta   int
}
