// Package keys holds 8192 pre-vetted keys for the Squares generator.
//
// Every key is odd, has no zero hex digit, and its low eight hex digits
// are pairwise distinct, matching the construction the algorithm's
// authors use when searching for keys. The table is fixed at build time;
// this package never generates or validates keys at runtime.
package keys

import (
	"errors"
)

// Count is the number of keys in the table.
const Count = 8192

// ErrInvalidIndex is returned when an index outside [0, Count) is
// requested. Out-of-range indexes are never clamped or wrapped: two
// requested indexes must never alias to the same key.
var ErrInvalidIndex = errors.New("key index out of range")

// At returns the key at index i, for i in [0, Count).
func At(i uint64) (uint64, error) {
	if i >= Count {
		return 0, ErrInvalidIndex
	}
	return table[i], nil
}
