// Command wmark-demo walks the full watermarking flow end to end:
// a client watermarks a parameter list, a protected server-side function
// authenticates it before running, and a tampered copy is rejected.
package main

import (
	"math/big"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wmark/protect"
)

var (
	key  = []byte("demo-key-32bytes-minimum---ok")
	zeta = big.NewInt(123456789) // expected secret code ζ
	eta  = 32                    // length of ζ₂ in bits
)

// sumEvenIndexed is the toy protected workload: sum of values at even indices.
func sumEvenIndexed(params []*big.Int) (*big.Int, error) {
	total := new(big.Int)
	for i := 0; i < len(params); i += 2 {
		total.Add(total, params[i])
	}

	return total, nil
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// 1024 integers = 512 pairs; enough coverage for eta=32.
	original := make([]*big.Int, 1024)
	for i := range original {
		original[i] = big.NewInt(int64(i + 1))
	}

	// Client side: embed the watermark.
	watermarked, err := protect.Prepare(original, key, zeta, eta)
	if err != nil {
		log.WithError(err).Fatal("prepare failed")
	}
	log.WithFields(logrus.Fields{
		"params": len(original),
		"eta":    eta,
	}).Info("parameter list watermarked")

	// Server side: the guard authenticates before running the workload.
	guard := protect.New(key, zeta, eta, protect.Raise)

	result, err := protect.Call(guard, watermarked, sumEvenIndexed)
	if err != nil {
		log.WithError(err).Fatal("authentic call rejected")
	}
	log.WithField("result", result).Info("authentic parameters accepted")

	// Tamper with the carrier values and try again.
	tampered := make([]*big.Int, len(watermarked))
	copy(tampered, watermarked)
	for i := 0; i < 80; i += 2 {
		tampered[i] = new(big.Int).Add(tampered[i], big.NewInt(1))
	}

	if _, err = protect.Call(guard, tampered, sumEvenIndexed); err != nil {
		log.WithError(err).Warn("tampered parameters rejected")
		os.Exit(0)
	}
	log.Error("tampering went undetected")
	os.Exit(1)
}
