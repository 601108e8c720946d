package arraylist

import (
	"cmp"

	"github.com/amp-labs/arraylist/compare"
	"github.com/amp-labs/arraylist/quicksort"
)

// Sort reorders the list in place using c. A nil comparator sorts by the
// natural order of the elements (see compare.Natural); if they have none,
// Sort returns an error wrapping compare.ErrNotOrdered and the list is left
// as it was. Sorting an empty list does nothing. The sort is not stable.
//
// Example:
//
//	_ = list.Sort(nil)                                // ascending, natural order
//	_ = list.Sort(compare.Ordered[int]().Reverse())   // descending
func (l *List[T]) Sort(c compare.Comparator[T]) error {
	if l.IsEmpty() {
		return nil
	}

	return quicksort.Sort(l.elements, 0, l.size-1, c)
}

// SortOrdered sorts a list of a built-in ordered type in ascending order.
// Unlike Sort(nil) it cannot fail: the order is checked at compile time.
func SortOrdered[T cmp.Ordered](l *List[T]) {
	quicksort.Ordered(l.elements[:l.size])
}
