// Package quicksort implements an in-place, unstable quicksort over any
// slice, ordered either by a caller-supplied comparator or by the natural
// order of the element type.
//
// The pivot is the middle element of each sub-range and partitioning is
// Hoare style. Average cost is O(n log n); inputs arranged adversarially
// against the middle pivot degrade to O(n²). Equal elements may be
// reordered.
package quicksort

import (
	"cmp"
	"fmt"

	"github.com/amp-labs/arraylist/compare"
	"github.com/amp-labs/arraylist/errors"
)

// ErrRange is returned when the bounds handed to Sort don't fit the slice.
var ErrRange = fmt.Errorf("%w: sort bounds", errors.ErrOutOfRange)

// Sort orders the inclusive sub-range data[from..to] in place.
//
// A nil comparator selects the natural order of T (see compare.Natural); if
// T has none, an error wrapping compare.ErrNotOrdered is returned and data
// is not modified. An empty range (from > to) is a no-op. Bounds outside
// the slice produce ErrRange.
//
// The comparator must be a consistent total order. One that is not, for
// example a comparator that never returns 0 or answers at random, does not
// make Sort fail or panic, but leaves the range in an unspecified order.
func Sort[T any](data []T, from, to int, c compare.Comparator[T]) error {
	if from < 0 || to >= len(data) {
		return fmt.Errorf("%w: [%d, %d] for length %d", ErrRange, from, to, len(data))
	}

	if from > to {
		return nil
	}

	if c == nil {
		natural, err := compare.Natural(data[from : to+1]...)
		if err != nil {
			return err
		}

		c = natural
	}

	sortRange(data, from, to, c)

	return nil
}

// Func sorts all of data with the given comparator.
func Func[T any](data []T, c compare.Comparator[T]) {
	sortRange(data, 0, len(data)-1, c)
}

// Ordered sorts all of data in ascending natural order.
func Ordered[T cmp.Ordered](data []T) {
	sortRange(data, 0, len(data)-1, cmp.Compare[T])
}

func sortRange[T any](data []T, start, end int, c compare.Comparator[T]) {
	if start >= end {
		return
	}

	// Captured by value: the slot it came from moves during partitioning.
	pivot := data[start+(end-start)/2]

	// The cursors are clamped to the range so an inconsistent comparator
	// can't walk them off either end.
	i, j := start, end
	for i <= j {
		for i < end && c(pivot, data[i]) > 0 {
			i++
		}

		for j > start && c(pivot, data[j]) < 0 {
			j--
		}

		if i <= j {
			data[i], data[j] = data[j], data[i]
			i++
			j--
		}
	}

	if start < j {
		sortRange(data, start, j, c)
	}

	if end > i {
		sortRange(data, i, end, c)
	}
}
