package protect

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/wmark/controller"
	"github.com/katalvlaran/wmark/encoder"
)

// Sentinel errors for the protected-call boundary.
var (
	// ErrNotAuthentic indicates that parameter authentication failed under
	// the Raise policy.
	ErrNotAuthentic = errors.New("protect: parameter authentication failed")
	// ErrBadPolicy indicates a Policy value outside the defined set.
	ErrBadPolicy = errors.New("protect: unknown tamper policy")
	// ErrNilFunc indicates a nil protected function.
	ErrNilFunc = errors.New("protect: protected function is nil")
)

// Policy selects what happens when incoming parameters fail authentication.
type Policy int

const (
	// Raise rejects the call with ErrNotAuthentic.
	Raise Policy = iota
	// ReturnSentinel returns the zero value of the result type with no error.
	ReturnSentinel
	// CallAnyway invokes the function with the raw watermarked parameters.
	CallAnyway
)

// Guard holds the shared-secret configuration of one protected boundary.
// A Guard is immutable after New and safe for concurrent use.
type Guard struct {
	key    []byte
	zeta   *big.Int
	eta    int
	policy Policy
	opts   []encoder.Option

	err error // recorded construction error, surfaced on Call
}

// New builds a Guard for the given shared key, expected code zeta, code
// bit-length eta, and tamper policy. Pipeline options (such as
// encoder.WithMAC) apply to every call through this Guard.
func New(key []byte, zeta *big.Int, eta int, policy Policy, opts ...encoder.Option) *Guard {
	g := &Guard{key: key, zeta: zeta, eta: eta, policy: policy, opts: opts}
	if policy < Raise || policy > CallAnyway {
		g.err = fmt.Errorf("%w: %d", ErrBadPolicy, policy)
	}

	return g
}

// Prepare is the client-side helper: it returns a watermarked copy of
// params ready to send to a protected boundary configured with the same
// (key, zeta, eta) and options.
func Prepare(params []*big.Int, key []byte, zeta *big.Int, eta int, opts ...encoder.Option) ([]*big.Int, error) {
	prep, err := encoder.Prepare(params, key, zeta, eta, opts...)
	if err != nil {
		return nil, err
	}

	return prep.Params, nil
}

// Call authenticates received and, on success, invokes fn with the restored
// original parameters. On failure the Guard's Policy applies.
//
// Configuration errors (bad eta, coverage, bad policy) are returned as-is;
// they signal a setup problem, not tampering.
func Call[T any](g *Guard, received []*big.Int, fn func([]*big.Int) (T, error)) (T, error) {
	var zero T
	if g.err != nil {
		return zero, g.err
	}
	if fn == nil {
		return zero, ErrNilFunc
	}

	built, err := encoder.Build(received, g.key, g.eta, g.opts...)
	if err != nil {
		return zero, err
	}
	res, err := controller.Verify(built.Graph, g.zeta)
	if err != nil {
		return zero, err
	}

	if res.Authentic {
		restored, rErr := encoder.Restore(received, built.Perm)
		if rErr != nil {
			return zero, rErr
		}

		return fn(restored)
	}

	switch g.policy {
	case CallAnyway:
		return fn(received)
	case ReturnSentinel:
		return zero, nil
	default: // Raise
		detail := "code mismatch"
		if res.Err != nil {
			detail = res.Err.Error()
		}

		return zero, fmt.Errorf("%w: %s", ErrNotAuthentic, detail)
	}
}
