package compare

import "cmp"

// Comparator is a three-way comparison function. It returns a negative number
// when a orders before b, zero when they are equivalent, and a positive number
// when a orders after b. A Comparator must define a total order over the values
// it is given.
type Comparator[T any] func(a, b T) int

// Ordering is implemented by types that carry their own natural order.
// Compare follows the same sign convention as Comparator.
type Ordering[T any] interface {
	Compare(other T) int
}

// Ordered returns the natural order of a built-in ordered type.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// FromLess adapts a strict "less than" predicate into a Comparator.
func FromLess[T any](less func(a, b T) bool) Comparator[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reverse returns a Comparator that orders values the opposite way.
func (c Comparator[T]) Reverse() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// Then returns a Comparator that falls back to next when c considers
// two values equivalent.
//
// Example:
//
//	byAge := compare.Comparator[Person](func(a, b Person) int { return cmp.Compare(a.Age, b.Age) })
//	byName := compare.Comparator[Person](func(a, b Person) int { return cmp.Compare(a.Name, b.Name) })
//	order := byAge.Then(byName)
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if r := c(a, b); r != 0 {
			return r
		}

		return next(a, b)
	}
}
