// Package protect wraps a function call with parameter authentication:
// incoming parameters are verified against the expected secret code before
// the protected logic runs, and the logic receives the *restored* original
// values, never the raw watermarked ones.
//
// Usage:
//
//	key := []byte("secret")
//	g := protect.New(key, big.NewInt(123456789), 32, protect.Raise)
//
//	// client side
//	watermarked, err := protect.Prepare(params, key, big.NewInt(123456789), 32)
//
//	// server side
//	sum, err := protect.Call(g, watermarked, func(orig []*big.Int) (*big.Int, error) {
//	    ... // runs only if orig authenticates
//	})
//
// When verification fails, the configured Policy decides the outcome:
//
//	Raise          — return ErrNotAuthentic (wrapped with the detail)
//	ReturnSentinel — return the zero value of the result type, no error
//	CallAnyway     — invoke the function with the raw watermarked values
//
// Policy is a closed set; an unknown value is a construction error
// surfaced on the first Call.
package protect
