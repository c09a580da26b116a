// Package squares implements the Squares counter-based random number
// generator for game development workloads. Output is a pure function of a
// (counter, key) pair, so streams are trivially reproducible, seekable, and
// parallel: give each worker its own key or its own disjoint counter block
// and no synchronization is ever needed.
//
// The algorithm is described in "Squares: A Fast Counter-Based RNG"
// https://arxiv.org/abs/2004.06278
//
// Keys must be chosen carefully. The keys subpackage provides 8192
// pre-vetted keys; a user-supplied key is used as-is, at the user's risk.
package squares

import "math/bits"

// goldenGamma perturbs the counter for the second half of Uint64.
const goldenGamma = 0x9e3779b97f4a7c15

// Uint32 returns the Squares output for a single (counter, key) pair.
// It is pure, total and allocation free: the same inputs always produce
// the same output, and calling it concurrently is safe.
//
// Four rounds of square-and-add are applied, rotating the 64-bit
// accumulator by 32 bits between rounds so entropy does not concentrate
// in the high half. The rounds alternate between mixing in y and z; the
// final z round breaks the fixed point at x=0. All arithmetic wraps
// modulo 2^64, which the mixing depends on.
func Uint32(counter, key uint64) uint32 {
	x := counter * key
	y := x
	z := y + key
	x = x*x + y
	x = bits.RotateLeft64(x, 32)
	x = x*x + z
	x = bits.RotateLeft64(x, 32)
	x = x*x + y
	x = bits.RotateLeft64(x, 32)
	return uint32((x*x + z) >> 32)
}

// Uint64 widens the 32-bit construction by combining two applications of
// Uint32 over staggered counters: the given counter supplies the high
// half and the counter perturbed by a fixed odd constant supplies the
// low half. Like Uint32 it is pure and safe for concurrent use.
func Uint64(counter, key uint64) uint64 {
	hi := Uint32(counter, key)
	lo := Uint32(counter^goldenGamma, key)
	return uint64(hi)<<32 | uint64(lo)
}
