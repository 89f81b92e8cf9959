// Package wmark authenticates integer parameter lists through dynamic
// software watermarking — a secret code is hidden inside the parameters
// themselves, then reconstructed and checked before the protected logic runs.
//
// 🚀 What is wmark?
//
//	A deterministic, dependency-light toolkit that brings together:
//		• Keyed primitives: HMAC-driven permutations, index maps & bits
//		• Difference expansion: exact reversible 1-bit embedding per pair
//		• Watermark graph: a cyclic pointer structure carrying the code
//		• Encoder: hint scatter, vote-based code rebuild, restore
//		• Controller: decode-and-compare authenticity verdicts
//		• Guard: a protected-call boundary with tamper policies
//
// ✨ Why choose wmark?
//
//   - No side channel – the watermark travels inside the parameter list
//   - Bit-exact – embedding and verification agree given only a shared key
//   - Stateless – every call is a pure function of (key, params, ζ, η)
//   - Tunable – pick your MAC, pick your tamper policy
//
// Everything is organized under small focused subpackages:
//
//	digits/     — integer ⇄ digit-array conversions (base 2, base 6, any base)
//	keyed/      — deterministic keyed pseudorandom derivations
//	dexp/       — reversible difference-expansion embedding
//	wgraph/     — cyclic watermark graph encode/decode
//	encoder/    — embedding, detection and code building pipeline
//	controller/ — authenticity verification
//	protect/    — guarded function-call boundary
//
// Quick flow:
//
//	client                        server
//	------                        ------
//	Prepare(params, key, ζ, η)    Build(received, key, η)
//	        │                      → Verify(graph, ζ)
//	        └── watermarked ──────→ Restore(received, P) → run logic
//
// See each package's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/wmark
package wmark
