// Package errors holds the sentinel errors shared by the container packages
// and a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrWrongType is returned when values cannot be ordered or compared
	// because of their type.
	ErrWrongType = errors.New("wrong type")

	// ErrOutOfRange is returned when a position falls outside the valid
	// interval for the requested operation.
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned when a constructor or option receives
	// a value it cannot accept.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when several independent checks should all be reported together
// instead of stopping at the first failure.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are automatically ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Len returns the number of errors collected so far.
func (c *Collection) Len() int {
	return len(c.errors)
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
