// Package arraylist implements List, a resizable, indexable sequence backed
// by a contiguous slice.
//
// Positional reads (Get, DeleteAt) accept indices in [0, Size()). Insertion
// (AddAt) accepts [0, Size()], where Size() appends. Bounds are validated
// before storage is touched, so a failed call leaves the list unchanged.
//
// When the storage is full it is reallocated with capacity old*3/2+1 and the
// live elements are copied across; it never shrinks. Appending is amortized
// O(1); inserting or deleting away from the tail shifts the rest of the list
// and costs O(n).
//
// A List is not safe for concurrent use.
package arraylist

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/amp-labs/arraylist/assert"
	"github.com/amp-labs/arraylist/compare"
	"github.com/amp-labs/arraylist/errors"
	"github.com/amp-labs/arraylist/optional"
	"github.com/amp-labs/arraylist/zero"
)

// ErrIndexOutOfRange is returned when a position is outside the interval
// accepted by the operation.
var ErrIndexOutOfRange = fmt.Errorf("list %w", errors.ErrOutOfRange)

// ErrNilEquality is returned by NewFunc when no equality function is given.
var ErrNilEquality = fmt.Errorf("%w: nil equality function", errors.ErrInvalidArgument)

// List is an array-backed sequence of elements of type T.
//
// The zero value is an empty list with no storage, ready to use. It compares
// elements with ==, which panics for dynamic types that aren't comparable;
// use NewFunc for those.
type List[T any] struct {
	elements []T               // Backing storage; len(elements) is the capacity
	size     int               // Number of live elements at the front of elements
	equals   func(a, b T) bool // Equality used by Contains, IndexOf, Delete and Equals
	logger   *slog.Logger
}

// New creates an empty List whose elements are compared with ==.
// The default capacity is DefaultCapacity; use WithCapacity to change it.
func New[T comparable](opts ...Option) (*List[T], error) {
	return newList(func(a, b T) bool { return a == b }, opts)
}

// NewComparable creates an empty List whose elements are compared with
// their own Equals method.
func NewComparable[T compare.Comparable[T]](opts ...Option) (*List[T], error) {
	return newList(func(a, b T) bool { return a.Equals(b) }, opts)
}

// NewFunc creates an empty List that uses the given equality function.
// This is the constructor for element types that are neither comparable
// nor implement compare.Comparable, such as slices.
func NewFunc[T any](equals func(a, b T) bool, opts ...Option) (*List[T], error) {
	if equals == nil {
		return nil, ErrNilEquality
	}

	return newList(equals, opts)
}

// Of creates a List holding the given elements, with exactly enough capacity
// for them.
func Of[T comparable](elements ...T) *List[T] {
	return &List[T]{
		elements: slices.Clone(elements),
		size:     len(elements),
		equals:   func(a, b T) bool { return a == b },
		logger:   discard,
	}
}

func newList[T any](equals func(a, b T) bool, opts []Option) (*List[T], error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	return &List[T]{
		elements: make([]T, o.capacity),
		equals:   equals,
		logger:   o.logger,
	}, nil
}

// Add appends an element to the end of the list.
func (l *List[T]) Add(element T) {
	l.ensureCapacity()

	l.elements[l.size] = element
	l.size++

	assert.Bounded(l.size, len(l.elements))
}

// AddAll appends the elements in order.
func (l *List[T]) AddAll(elements ...T) {
	for _, element := range elements {
		l.Add(element)
	}
}

// AddAt inserts an element at index, shifting the element currently there
// and everything after it one position to the right. index may equal Size(),
// which appends.
func (l *List[T]) AddAt(index int, element T) error {
	if index < 0 || index > l.size {
		return l.outOfRange(index)
	}

	l.ensureCapacity()

	copy(l.elements[index+1:l.size+1], l.elements[index:l.size])
	l.elements[index] = element
	l.size++

	assert.Bounded(l.size, len(l.elements))

	return nil
}

// Get returns the element at index.
func (l *List[T]) Get(index int) (T, error) {
	if err := l.checkElementIndex(index); err != nil {
		return zero.Value[T](), err
	}

	return l.elements[index], nil
}

// Delete removes the first occurrence of element and reports whether one
// was found. A nil-ish element never matches, so Delete(nil) is always false.
func (l *List[T]) Delete(element T) bool {
	index, found := l.IndexOf(element).Get()
	if !found {
		return false
	}

	l.removeAt(index)

	return true
}

// DeleteAt removes and returns the element at index, shifting everything
// after it one position to the left.
func (l *List[T]) DeleteAt(index int) (T, error) {
	if err := l.checkElementIndex(index); err != nil {
		return zero.Value[T](), err
	}

	removed := l.elements[index]
	l.removeAt(index)

	return removed, nil
}

// IndexOf returns the position of the first element equal to element, or
// None when there is no such element. A nil-ish element (nil pointer,
// interface, map, slice, channel or function) is never found.
func (l *List[T]) IndexOf(element T) optional.Value[int] {
	target, ok := optional.Of(element).Get()
	if !ok {
		return optional.None[int]()
	}

	for i := range l.size {
		if l.equal(target, l.elements[i]) {
			return optional.Some(i)
		}
	}

	return optional.None[int]()
}

// Contains reports whether the list holds an element equal to element.
// It is false for an empty list and for a nil-ish element.
func (l *List[T]) Contains(element T) bool {
	return l.IndexOf(element).NonEmpty()
}

// ContainsValue is Contains for an optional element; None is never contained.
func (l *List[T]) ContainsValue(element optional.Value[T]) bool {
	value, ok := element.Get()

	return ok && l.Contains(value)
}

// Size returns the number of elements in the list.
func (l *List[T]) Size() int {
	return l.size
}

// IsEmpty returns true if the list holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Capacity returns the number of slots in the backing storage.
func (l *List[T]) Capacity() int {
	return len(l.elements)
}

// Clear removes every element but keeps the allocated storage.
func (l *List[T]) Clear() {
	clear(l.elements[:l.size])
	l.size = 0
}

// Entries returns a copy of the elements in list order.
func (l *List[T]) Entries() []T {
	return slices.Clone(l.elements[:l.size])
}

func (l *List[T]) ensureCapacity() {
	if l.size == len(l.elements) {
		l.grow()
	}
}

func (l *List[T]) grow() {
	oldCapacity := len(l.elements)
	newCapacity := oldCapacity*3/2 + 1

	grown := make([]T, newCapacity)
	copy(grown, l.elements[:l.size])
	l.elements = grown

	l.log().Debug("growing backing storage",
		"old_capacity", oldCapacity,
		"new_capacity", newCapacity,
		"size", l.size)
}

// removeAt closes the gap left at index and clears the vacated tail slot
// so it no longer references the removed element.
func (l *List[T]) removeAt(index int) {
	copy(l.elements[index:l.size-1], l.elements[index+1:l.size])
	l.size--
	l.elements[l.size] = zero.Value[T]()

	assert.Bounded(l.size, len(l.elements))
}

func (l *List[T]) equal(a, b T) bool {
	if l.equals == nil {
		return any(a) == any(b)
	}

	return l.equals(a, b)
}

func (l *List[T]) log() *slog.Logger {
	if l.logger == nil {
		return discard
	}

	return l.logger
}

func (l *List[T]) checkElementIndex(index int) error {
	if index < 0 || index >= l.size {
		return l.outOfRange(index)
	}

	return nil
}

func (l *List[T]) outOfRange(index int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
}
