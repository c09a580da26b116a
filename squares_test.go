package squares_test

import (
	"math/bits"
	"testing"

	"github.com/Phobos001/squares-rng"
	"github.com/Phobos001/squares-rng/keys"
)

// testKey is a vetted key used across the tests; any table key works.
const testKey = 0x2467cb532b5ce8d1

func TestUint32Deterministic(t *testing.T) {
	for _, counter := range []uint64{0, 1, 1 << 32, 0xdeadbeef, ^uint64(0)} {
		a := squares.Uint32(counter, testKey)
		b := squares.Uint32(counter, testKey)
		if a != b {
			t.Fatalf("counter %d: %08x != %08x", counter, a, b)
		}
	}
}

func TestUint32KnownAnswers(t *testing.T) {
	vectors := []struct {
		counter uint64
		want    uint32
	}{
		{0, 0x87053a45},
		{1, 0xed6802b9},
		{2, 0xf967c44f},
		{3, 0x47702275},
		{0xdeadbeef, 0x6ff79a07},
		{^uint64(0), 0x67c23e9c},
	}
	for _, v := range vectors {
		if got := squares.Uint32(v.counter, testKey); got != v.want {
			t.Fatalf("Uint32(%d): got %08x, want %08x", v.counter, got, v.want)
		}
	}
}

func TestUint64KnownAnswers(t *testing.T) {
	vectors := []struct {
		counter uint64
		want    uint64
	}{
		{0, 0x87053a45d459cfc9},
		{1, 0xed6802b9c25c5edd},
		{2, 0xf967c44ff938d61c},
	}
	for _, v := range vectors {
		if got := squares.Uint64(v.counter, testKey); got != v.want {
			t.Fatalf("Uint64(%d): got %016x, want %016x", v.counter, got, v.want)
		}
	}
}

// Adjacent counters must flip close to half of the output bits on
// average. This is a coarse regression guard for the round structure,
// not a statistical proof.
func TestUint32Avalanche(t *testing.T) {
	const n = 10000
	total := 0
	for c := uint64(0); c < n; c++ {
		diff := squares.Uint32(c, testKey) ^ squares.Uint32(c+1, testKey)
		total += bits.OnesCount32(diff)
	}
	mean := float64(total) / n
	if mean < 15.0 || mean > 17.0 {
		t.Fatalf("mean hamming distance %.3f, want near 16", mean)
	}
}

// The final z round exists to break the fixed point at x=0; if it is
// ever dropped or folded into y, counter 0 collapses to zero output.
func TestNoFixedPointAtZero(t *testing.T) {
	for i := uint64(0); i < keys.Count; i++ {
		key, err := keys.At(i)
		if err != nil {
			t.Fatal(err)
		}
		if squares.Uint32(0, key) == 0 {
			t.Fatalf("key %d (%016x): zero output at counter 0", i, key)
		}
	}
}

func BenchmarkUint32(b *testing.B) {
	b.ReportAllocs()
	var sink uint32
	for i := 0; i < b.N; i++ {
		sink = squares.Uint32(uint64(i), testKey)
	}
	_ = sink
}

func BenchmarkUint64(b *testing.B) {
	b.ReportAllocs()
	var sink uint64
	for i := 0; i < b.N; i++ {
		sink = squares.Uint64(uint64(i), testKey)
	}
	_ = sink
}
