package dexp_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/wmark/dexp"
)

// BenchmarkEmbedExtract measures one full embed/extract cycle.
func BenchmarkEmbedExtract(b *testing.B) {
	x, y := big.NewInt(123456789), big.NewInt(-987654321)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		xe, ye, err := dexp.Embed(x, y, i&1)
		if err != nil {
			b.Fatalf("Embed failed: %v", err)
		}
		if _, _, _, err = dexp.Extract(xe, ye); err != nil {
			b.Fatalf("Extract failed: %v", err)
		}
	}
}
