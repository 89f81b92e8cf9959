// Package wgraph defines the node arena and sentinel errors.
package wgraph

import "errors"

// None marks an absent relation.
const None = -1

// Sentinel errors for watermark-graph operations.
var (
	// ErrEmptyDigits indicates an empty ζ₆ array passed to Encode.
	ErrEmptyDigits = errors.New("wgraph: digit array must be non-empty")
	// ErrDigitRange indicates a digit outside [0, 5].
	ErrDigitRange = errors.New("wgraph: digit out of base-6 range")
	// ErrNilGraph indicates a nil *Graph.
	ErrNilGraph = errors.New("wgraph: graph is nil")
	// ErrBadLength indicates a non-positive expected node count μ.
	ErrBadLength = errors.New("wgraph: mu must be > 0")
	// ErrBadHead indicates a head index outside the arena.
	ErrBadHead = errors.New("wgraph: head index out of range")
	// ErrBrokenRing indicates a next relation missing before the walk completed.
	ErrBrokenRing = errors.New("wgraph: invalid structure (broken ring)")
	// ErrUnreachableDigit indicates a digit target not reached within μ steps.
	ErrUnreachableDigit = errors.New("wgraph: invalid structure (unreachable digit)")
)

// Node is one ring element. Next and Digit are arena indices; None means
// the relation is absent. A Digit of None decodes as digit 0.
type Node struct {
	Next  int
	Digit int
}

// Graph is an arena of ring nodes plus the head index. Fields are exported
// so callers (and tests) can inspect or deliberately corrupt the structure;
// Decode validates everything it touches.
type Graph struct {
	Nodes []Node
	Head  int
}
