// Package wgraph encodes a base-6 digit array ζ₆ as a cyclic pointer
// structure and decodes it back by pure traversal.
//
// The structure is a ring of μ nodes connected by "next" relations, where
// node r additionally carries an optional "digit" relation:
//
//	digit d = 0      → no relation
//	digit d ∈ [1,5]  → relation targets node (r + d − 1) mod μ
//
// The digit array is carried *only* by the pointer shape — no node stores a
// value. Decoding recovers digit d at node r by counting the next-steps from
// r to its digit target (d = steps + 1), bounded by μ steps.
//
// Nodes live in an arena and relations are indices into it, with None (-1)
// marking an absent relation. This keeps the cyclic structure trivially
// ownable and lets tests sever relations to simulate corruption.
//
// Decode distinguishes two failure shapes: a broken ring (a next relation
// missing before the walk completes) and an unreachable digit target (not
// found within μ steps).
package wgraph
