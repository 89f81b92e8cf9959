// Package dexp implements reversible difference expansion: embedding one
// bit into an integer pair (x, y) such that the bit and the original pair
// can later be recovered exactly.
//
// The transform:
//
//	embed(x, y, b):   d = x − y        extract(x′, y′):  d′ = x′ − y′
//	                  a = ⌊(x+y)/2⌋                      b  = d′ mod 2
//	                  d′ = 2·d + b                       d  = ⌊d′/2⌋
//	                  x′ = a + ⌈d′/2⌉                    a  = ⌊(x′+y′)/2⌋
//	                  y′ = a − ⌊d′/2⌋                    x  = a + ⌈d/2⌉
//	                                                     y  = a − ⌊d/2⌋
//
// extract(embed(x, y, b)) == (b, x, y) holds for every pair of integers and
// both bit values — no rounding tolerance, no information loss. Floor
// division truncates toward negative infinity and the recovered bit uses
// the mathematical (always non-negative) modulo; both are exact on
// *big.Int regardless of sign.
//
// Embedding doubles the pair's difference, so values operate on *big.Int
// to rule out overflow for any input magnitude.
package dexp
