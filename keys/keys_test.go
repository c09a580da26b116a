package keys_test

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/Phobos001/squares-rng/keys"
)

func TestCount(t *testing.T) {
	if keys.Count != 8192 {
		t.Fatalf("count %d", keys.Count)
	}
}

func TestAtStable(t *testing.T) {
	for i := uint64(0); i < keys.Count; i++ {
		a, err := keys.At(i)
		if err != nil {
			t.Fatal(err)
		}
		b, err := keys.At(i)
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Fatalf("index %d unstable: %016x != %016x", i, a, b)
		}
	}
}

func TestAtOutOfRange(t *testing.T) {
	if _, err := keys.At(keys.Count); !errors.Is(err, keys.ErrInvalidIndex) {
		t.Fatalf("At(%d): got %v", keys.Count, err)
	}
	if _, err := keys.At(^uint64(0)); !errors.Is(err, keys.ErrInvalidIndex) {
		t.Fatalf("At(max): got %v", err)
	}
}

// Every table key follows the published construction: odd, no zero hex
// digit, low eight hex digits pairwise distinct. All keys are unique.
func TestKeyCriteria(t *testing.T) {
	seen := make(map[uint64]uint64, keys.Count)
	for i := uint64(0); i < keys.Count; i++ {
		k, err := keys.At(i)
		if err != nil {
			t.Fatal(err)
		}
		if k&1 == 0 {
			t.Fatalf("key %d (%016x) is even", i, k)
		}
		var low uint16
		for d := 0; d < 16; d++ {
			nibble := (k >> (4 * d)) & 0xF
			if nibble == 0 {
				t.Fatalf("key %d (%016x) has a zero hex digit", i, k)
			}
			if d < 8 {
				low |= 1 << nibble
			}
		}
		if bits.OnesCount16(low) != 8 {
			t.Fatalf("key %d (%016x): low hex digits not distinct", i, k)
		}
		if prev, dup := seen[k]; dup {
			t.Fatalf("key %016x appears at both %d and %d", k, prev, i)
		}
		seen[k] = i
	}
}
