package arraylist

import (
	"fmt"
	"log/slog"

	"github.com/amp-labs/arraylist/errors"
)

// DefaultCapacity is the number of slots allocated when no capacity is requested.
const DefaultCapacity = 10

// ErrInvalidCapacity is returned when a negative capacity is requested.
var ErrInvalidCapacity = fmt.Errorf("%w: capacity", errors.ErrInvalidArgument)

var discard = slog.New(slog.DiscardHandler)

// Option is a function that configures a List at construction time.
type Option func(*options)

type options struct {
	capacity int          // Initial number of slots in the backing storage
	logger   *slog.Logger // Receives debug records when storage grows
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		capacity: DefaultCapacity,
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, o.capacity)
	}

	if o.logger == nil {
		o.logger = discard
	}

	return o, nil
}

// WithCapacity sets the initial capacity of the backing storage.
// A negative capacity makes the constructor fail with ErrInvalidCapacity.
//
// Example:
//
//	list, err := arraylist.New[int](arraylist.WithCapacity(1024))
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithLogger sets the logger that receives a debug record every time the
// backing storage is reallocated. By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
