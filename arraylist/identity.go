package arraylist

import (
	"fmt"
	"hash"

	"github.com/amp-labs/arraylist/compare"
	"github.com/amp-labs/arraylist/hashing"
)

var (
	_ hashing.Hashable               = (*List[int])(nil)
	_ compare.Comparable[*List[int]] = (*List[int])(nil)
	_ fmt.Stringer                   = (*List[int])(nil)
)

// Equals reports whether other holds the same elements in the same order,
// using this list's equality. Capacity is not compared.
func (l *List[T]) Equals(other *List[T]) bool {
	if other == nil || l.size != other.size {
		return false
	}

	for i := range l.size {
		if !l.equal(l.elements[i], other.elements[i]) {
			return false
		}
	}

	return true
}

// UpdateHash writes the size and then every element, in order, into h.
// Elements must be hashing.Hashable or of a kind hashing.UpdateHash
// understands. Combined with a hashing.HashFunc this gives a content
// fingerprint:
//
//	digest, err := hashing.Xxh3(list)
//
// The digest follows the element values themselves, not the list's
// equality. Lists built with NewFunc or NewComparable can be Equals while
// hashing differently, e.g. "A" and "a" under strings.EqualFold.
func (l *List[T]) UpdateHash(h hash.Hash) error {
	if err := hashing.UpdateHash(h, l.size); err != nil {
		return err
	}

	for i := range l.size {
		if err := hashing.UpdateHash(h, l.elements[i]); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}

	return nil
}

// String formats the elements like a slice, e.g. "[1 3 5 8]".
func (l *List[T]) String() string {
	return fmt.Sprint(l.elements[:l.size])
}
