package squares_test

import (
	"errors"
	"math/rand"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/Phobos001/squares-rng"
	"github.com/Phobos001/squares-rng/keys"
)

func TestStreamCounterAdvance(t *testing.T) {
	s := squares.New(testKey, 0)
	if got := s.Uint32(); got != squares.Uint32(0, testKey) {
		t.Fatalf("first output %08x", got)
	}
	if s.Position() != 1 {
		t.Fatalf("position after Uint32: %d", s.Position())
	}
	// Uint64 consumes a single tick, same as Uint32.
	s.Uint64()
	if s.Position() != 2 {
		t.Fatalf("position after Uint64: %d", s.Position())
	}
}

func TestStreamCounterWraps(t *testing.T) {
	s := squares.New(testKey, ^uint64(0))
	if got := s.Uint32(); got != squares.Uint32(^uint64(0), testKey) {
		t.Fatalf("output at max counter %08x", got)
	}
	if s.Position() != 0 {
		t.Fatalf("counter did not wrap: %d", s.Position())
	}
}

func TestNewFromTable(t *testing.T) {
	s, err := squares.NewFromTable(42, 0)
	if err != nil {
		t.Fatal(err)
	}
	want, err := keys.At(42)
	if err != nil {
		t.Fatal(err)
	}
	if s.Key() != want {
		t.Fatalf("stream key %016x, table key %016x", s.Key(), want)
	}
	if _, err = squares.NewFromTable(keys.Count, 0); !errors.Is(err, keys.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestInt32FullRange(t *testing.T) {
	a := squares.New(testKey, 0)
	b := squares.New(testKey, 0)
	sawNegative := false
	for i := 0; i < 1000; i++ {
		v := a.Int32()
		if v != int32(b.Uint32()) {
			t.Fatalf("sample %d: Int32 is not a bit reinterpretation", i)
		}
		if v < 0 {
			sawNegative = true
		}
	}
	if !sawNegative {
		t.Fatal("no negative values in 1000 samples")
	}
}

func TestFloat64Unit(t *testing.T) {
	s := squares.New(testKey, 0)
	sum := 0.0
	for i := 0; i < 10000; i++ {
		v := s.Float64()
		if v < 0.0 || v >= 1.0 {
			t.Fatalf("sample %d out of [0,1): %v", i, v)
		}
		sum += v
	}
	mean := sum / 10000
	if mean < 0.49 || mean > 0.51 {
		t.Fatalf("mean %v, want near 0.5", mean)
	}
}

func TestFloat32Unit(t *testing.T) {
	s := squares.New(testKey, 0)
	for i := 0; i < 10000; i++ {
		if v := s.Float32(); v < 0.0 || v >= 1.0 {
			t.Fatalf("sample %d out of [0,1): %v", i, v)
		}
	}
}

func TestInt64Range(t *testing.T) {
	s := squares.New(testKey, 0)
	for i := 0; i < 10000; i++ {
		v, err := s.Int64Range(5, 10)
		if err != nil {
			t.Fatal(err)
		}
		if v < 5 || v >= 10 {
			t.Fatalf("sample %d out of [5,10): %d", i, v)
		}
	}
	for i := 0; i < 1000; i++ {
		v, err := s.Int64Range(-3, 3)
		if err != nil {
			t.Fatal(err)
		}
		if v < -3 || v >= 3 {
			t.Fatalf("sample %d out of [-3,3): %d", i, v)
		}
	}
}

func TestInt64RangeInvalid(t *testing.T) {
	s := squares.New(testKey, 0)
	if _, err := s.Int64Range(5, 5); !errors.Is(err, squares.ErrInvalidRange) {
		t.Fatalf("empty range: got %v", err)
	}
	if _, err := s.Int64Range(10, 5); !errors.Is(err, squares.ErrInvalidRange) {
		t.Fatalf("inverted range: got %v", err)
	}
}

func TestFloatRanges(t *testing.T) {
	s := squares.New(testKey, 0)
	for i := 0; i < 1000; i++ {
		if v := s.Float32Range(2, 4); v < 2 || v >= 4 {
			t.Fatalf("f32 sample out of [2,4): %v", v)
		}
		if v := s.Float64Range(-10, 10); v < -10 || v >= 10 {
			t.Fatalf("f64 sample out of [-10,10): %v", v)
		}
	}
}

func TestVecComponents(t *testing.T) {
	s := squares.New(testKey, 0)
	check32 := func(vs ...float32) {
		for _, v := range vs {
			if v < -1 || v >= 1 {
				t.Fatalf("component out of [-1,1): %v", v)
			}
		}
	}
	check64 := func(vs ...float64) {
		for _, v := range vs {
			if v < -1 || v >= 1 {
				t.Fatalf("component out of [-1,1): %v", v)
			}
		}
	}
	for i := 0; i < 200; i++ {
		x, y := s.Vec2f32()
		check32(x, y)
		a, b, c := s.Vec3f32()
		check32(a, b, c)
		d, e, f, g := s.Vec4f32()
		check32(d, e, f, g)
		p, q := s.Vec2f64()
		check64(p, q)
		h, j, k := s.Vec3f64()
		check64(h, j, k)
		w, m, n, o := s.Vec4f64()
		check64(w, m, n, o)
	}
}

func TestReplayFromPosition(t *testing.T) {
	s := squares.New(testKey, 12345)
	for i := 0; i < 37; i++ {
		s.Uint32()
	}
	pos := s.Position()
	var want [5]uint32
	for i := range want {
		want[i] = s.Uint32()
	}

	replay := squares.New(testKey, 0)
	replay.Seek(pos)
	for i := range want {
		if got := replay.Uint32(); got != want[i] {
			t.Fatalf("replay sample %d: got %08x, want %08x", i, got, want[i])
		}
	}
}

func TestJump(t *testing.T) {
	jumped := squares.New(testKey, 500)
	jumped.Jump(100)
	direct := squares.New(testKey, 600)
	if a, b := jumped.Uint32(), direct.Uint32(); a != b {
		t.Fatalf("jump mismatch: %08x != %08x", a, b)
	}
}

func TestRead(t *testing.T) {
	a := squares.New(testKey, 0)
	b := squares.New(testKey, 0)
	bufA := make([]byte, 20)
	bufB := make([]byte, 20)
	n, err := a.Read(bufA)
	if err != nil || n != 20 {
		t.Fatalf("read: n=%d err=%v", n, err)
	}
	if _, err = b.Read(bufB); err != nil {
		t.Fatal(err)
	}
	if string(bufA) != string(bufB) {
		t.Fatal("reads from equal streams differ")
	}
	// 20 bytes is two full words plus a partial third.
	if a.Position() != 3 {
		t.Fatalf("position after read: %d", a.Position())
	}
}

func TestSource(t *testing.T) {
	a := rand.New(squares.Source(squares.New(testKey, 0)))
	b := rand.New(squares.Source(squares.New(testKey, 0)))
	for i := 0; i < 100; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("sample %d: sources diverge", i)
		}
	}
	if v := a.Intn(10); v < 0 || v >= 10 {
		t.Fatalf("Intn out of range: %d", v)
	}
}

// Workers on disjoint counter blocks reproduce the serial sequence
// exactly: partition the counter space, don't lock it.
func TestParallelPartition(t *testing.T) {
	const (
		workers = 4
		block   = 1000
	)
	serial := squares.New(testKey, 0)
	want := make([]uint32, workers*block)
	for i := range want {
		want[i] = serial.Uint32()
	}

	got := make([]uint32, workers*block)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			s := squares.New(testKey, 0)
			s.Jump(uint64(w * block))
			for i := 0; i < block; i++ {
				got[w*block+i] = s.Uint32()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample %d: got %08x, want %08x", i, got[i], want[i])
		}
	}
}

func BenchmarkStreamFloat64(b *testing.B) {
	b.ReportAllocs()
	s := squares.New(testKey, 0)
	var sink float64
	for i := 0; i < b.N; i++ {
		sink = s.Float64()
	}
	_ = sink
}
