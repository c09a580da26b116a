package squares

import (
	"math/bits"

	"github.com/Phobos001/squares-rng/keys"
)

// Stream is a stateful generator: one key, one counter, nothing else.
// Each accessor produces the output for the current counter and advances
// it by one, wrapping at 2^64. The entire resumable state is the
// (key, counter) pair; save Key and Position and construct a new Stream
// with them to replay the exact sequence.
//
// A Stream is not safe for concurrent use. Instead of sharing one behind
// a lock, give each goroutine its own Stream on a distinct key or a
// disjoint counter block carved out with Jump.
type Stream struct {
	key     uint64
	counter uint64
}

// New returns a Stream over the given key, starting at counter.
// The key is used as-is; it is the caller's responsibility that it mixes
// well. Prefer NewFromTable unless you have a vetted key of your own.
func New(key, counter uint64) *Stream {
	return &Stream{key: key, counter: counter}
}

// NewFromTable returns a Stream keyed by entry index of the built-in
// table of 8192 pre-vetted keys. Fails with keys.ErrInvalidIndex when
// index is out of range.
func NewFromTable(index, counter uint64) (*Stream, error) {
	key, err := keys.At(index)
	if err != nil {
		return nil, err
	}
	return New(key, counter), nil
}

// Key returns the stream's key.
func (s *Stream) Key() uint64 {
	return s.key
}

// Position returns the current counter value. Together with Key it is
// the stream's entire serializable state.
func (s *Stream) Position() uint64 {
	return s.counter
}

// Seek sets the counter, so the next output is the one for exactly that
// counter value.
func (s *Stream) Seek(counter uint64) {
	s.counter = counter
}

// Jump advances the counter by n without producing output. Use it to
// hand disjoint counter blocks to independent workers.
func (s *Stream) Jump(n uint64) {
	s.counter += n
}

// Uint32 returns the next 32-bit output and advances the counter by one.
func (s *Stream) Uint32() uint32 {
	v := Uint32(s.counter, s.key)
	s.counter++
	return v
}

// Uint64 returns the next 64-bit output. It consumes exactly one counter
// tick, the same as Uint32, so mixing the two keeps counter accounting
// trivial.
func (s *Stream) Uint64() uint64 {
	v := Uint64(s.counter, s.key)
	s.counter++
	return v
}

// Int32 returns the next output reinterpreted as a two's-complement
// signed value over the full 32-bit range.
func (s *Stream) Int32() int32 {
	return int32(s.Uint32())
}

// Int returns a non-negative pseudorandom int.
func (s *Stream) Int() int {
	return int(uint(s.Uint64()) >> 1)
}

// Float64 returns the next value uniformly distributed in [0, 1).
// The top 53 bits of the raw output become the numerator over 2^53, so
// the result is an exact dyadic ratio and never reaches 1.0.
func (s *Stream) Float64() float64 {
	return float64(s.Uint64()>>11) / (1 << 53)
}

// Float32 returns the next value uniformly distributed in [0, 1), built
// from the top 24 bits of the raw 32-bit output.
func (s *Stream) Float32() float32 {
	return float32(s.Uint32()>>8) / (1 << 24)
}

// Int64Range returns the next value uniformly distributed in the
// half-open range [low, high). Fails with ErrInvalidRange when
// high <= low.
//
// Mapping uses Lemire's widening multiply with the rejection threshold,
// so every value in the range is exactly equally likely; there is no
// modulo bias for spans that are not a power of two.
func (s *Stream) Int64Range(low, high int64) (int64, error) {
	if high <= low {
		return 0, ErrInvalidRange
	}
	span := uint64(high) - uint64(low)
	return low + int64(s.uint64n(span)), nil
}

// uint64n returns a uniform value in [0, n). n must be nonzero.
func (s *Stream) uint64n(n uint64) uint64 {
	hi, lo := bits.Mul64(s.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(s.Uint64(), n)
		}
	}
	return hi
}
