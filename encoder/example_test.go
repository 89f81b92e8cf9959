package encoder_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/wmark/controller"
	"github.com/katalvlaran/wmark/encoder"
)

// Example walks the full pipeline: a client watermarks a parameter list
// with the secret code, the server rebuilds the watermark graph from the
// received values, verifies it, and restores the originals.
func Example() {
	key := []byte("example-shared-key")
	zeta := big.NewInt(123456789)
	const eta = 32

	// 1024 integers = 512 pairs; plenty for eta=32 coverage.
	params := make([]*big.Int, 1024)
	for i := range params {
		params[i] = big.NewInt(int64(i + 1))
	}

	// client side
	prep, err := encoder.Prepare(params, key, zeta, eta)
	if err != nil {
		fmt.Println("prepare:", err)

		return
	}

	// server side
	built, err := encoder.Build(prep.Params, key, eta)
	if err != nil {
		fmt.Println("build:", err)

		return
	}
	res, err := controller.Verify(built.Graph, zeta)
	if err != nil {
		fmt.Println("verify:", err)

		return
	}

	restored, err := encoder.Restore(prep.Params, built.Perm)
	if err != nil {
		fmt.Println("restore:", err)

		return
	}

	exact := true
	for i := range params {
		if params[i].Cmp(restored[i]) != 0 {
			exact = false
		}
	}

	fmt.Println("authentic:", res.Authentic)
	fmt.Println("recovered code:", res.Code)
	fmt.Println("restored exactly:", exact)
	// Output:
	// authentic: true
	// recovered code: 123456789
	// restored exactly: true
}
