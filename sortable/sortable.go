package sortable

import (
	"github.com/amp-labs/arraylist/compare"
)

// Sortable is a value that knows both how to test equality and how to order
// itself against another value of the same type.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Comparator returns the natural order of a Sortable type as a three-way
// comparator.
func Comparator[T Sortable[T]]() compare.Comparator[T] {
	return compare.FromLess(func(a, b T) bool {
		return a.LessThan(b)
	})
}
