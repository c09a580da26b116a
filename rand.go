package squares

import (
	"encoding/binary"
	"math/rand"
)

// Rand is the random number surface consumed by simulation code.
type Rand interface {
	Int() int
	Uint64() uint64
	Uint32() uint32
	Float64() float64
	Read([]byte) (n int, err error)
}

var _ Rand = (*Stream)(nil)

// Read fills p with generator output. It always fills the whole slice
// and never fails; the error return exists to satisfy io.Reader style
// consumers.
func (s *Stream) Read(p []byte) (int, error) {
	n := len(p)
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, s.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], s.Uint64())
		copy(p, b[:])
	}
	return n, nil
}

type source struct {
	s *Stream
}

var _ rand.Source64 = (*source)(nil)

// Source adapts a Stream to math/rand.Source64 so it can drive a
// *rand.Rand for the distributions this package does not provide.
// The returned source shares the Stream's counter.
func Source(s *Stream) rand.Source64 {
	return &source{s: s}
}

func (src *source) Seed(seed int64) {
	src.s.Seek(uint64(seed))
}

func (src *source) Int63() int64 {
	return int64(src.s.Uint64() >> 1)
}

func (src *source) Uint64() uint64 {
	return src.s.Uint64()
}
