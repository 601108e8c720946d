// Package sortable provides element types that carry their own natural order,
// so that a list of them can be sorted without supplying a comparator.
//
// # Overview
//
// The [Sortable] interface extends [github.com/amp-labs/arraylist/compare.Comparable]
// with a LessThan method. [compare.Natural] recognizes that shape, which means any
// Sortable type works with a nil comparator:
//
//	list, _ := arraylist.NewComparable[sortable.Int]()
//	list.AddAll(5, 3, 8, 1)
//	_ = list.Sort(nil) // 1, 3, 5, 8
//
// The wrapper types [Int], [Float], [Byte] and [String] also implement
// [compare.Ordering], so they can be handed to code that expects a Compare method.
//
// # Creating Custom Sortable Types
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Equals(other Task) bool {
//	    return t.Priority == other.Priority && t.Name == other.Name
//	}
//
//	func (t Task) LessThan(other Task) bool {
//	    if t.Priority != other.Priority {
//	        return t.Priority < other.Priority
//	    }
//	    return t.Name < other.Name
//	}
//
// LessThan must be a strict weak order consistent with Equals, otherwise
// sorting produces an unspecified permutation.
package sortable
