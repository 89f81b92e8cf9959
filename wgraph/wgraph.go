package wgraph

import "fmt"

// Encode builds the cyclic watermark graph carrying zeta6 and returns it
// with Head at node 0.
//
// Returns ErrEmptyDigits for an empty array and ErrDigitRange (wrapped with
// the offending digit) for digits outside [0, 5].
//
// Complexity: O(μ) time and space.
func Encode(zeta6 []int) (*Graph, error) {
	mu := len(zeta6)
	if mu == 0 {
		return nil, ErrEmptyDigits
	}

	g := &Graph{Nodes: make([]Node, mu), Head: 0}
	for r, d := range zeta6 {
		if d < 0 || d > 5 {
			return nil, fmt.Errorf("%w: %d at position %d", ErrDigitRange, d, r)
		}
		g.Nodes[r].Next = (r + 1) % mu
		if d == 0 {
			g.Nodes[r].Digit = None
		} else {
			g.Nodes[r].Digit = (r + d - 1) % mu
		}
	}

	return g, nil
}

// valid reports whether i addresses a node of g.
func (g *Graph) valid(i int) bool {
	return i >= 0 && i < len(g.Nodes)
}

// Decode recovers the ζ₆ digit array from g by traversal, expecting a ring
// of exactly mu nodes starting at g.Head.
//
// It first materializes the ring order by following next relations mu−1
// times, then derives each digit by counting next-steps from its node to
// the digit target. Returns ErrBrokenRing if any next relation is absent
// before a walk completes, and ErrUnreachableDigit if a digit target is not
// reached within mu steps.
//
// Complexity: O(μ²) worst-case traversal steps.
func Decode(g *Graph, mu int) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if mu <= 0 {
		return nil, ErrBadLength
	}
	if !g.valid(g.Head) {
		return nil, ErrBadHead
	}

	// Materialize the ring in order from the head.
	ring := make([]int, 1, mu)
	ring[0] = g.Head
	cur := g.Head
	for r := 1; r < mu; r++ {
		cur = g.Nodes[cur].Next
		if !g.valid(cur) {
			return nil, ErrBrokenRing
		}
		ring = append(ring, cur)
	}

	zeta6 := make([]int, mu)
	for r, idx := range ring {
		target := g.Nodes[idx].Digit
		if target == None {
			zeta6[r] = 0
			continue
		}

		// Count next-steps from the node to its digit target.
		steps := 0
		probe := idx
		for probe != target {
			probe = g.Nodes[probe].Next
			steps++
			if !g.valid(probe) {
				return nil, ErrBrokenRing
			}
			if steps > mu {
				return nil, ErrUnreachableDigit
			}
		}
		zeta6[r] = steps + 1
	}

	return zeta6, nil
}
