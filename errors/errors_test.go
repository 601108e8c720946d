package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Equal(t, 0, c.Len())
	})
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		require.NoError(t, c.GetError())
	})

	t.Run("returns the single error unchanged", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err := fmt.Errorf("%w: element 3", ErrWrongType)
		c.Add(err)

		assert.Same(t, err, c.GetError())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(fmt.Errorf("%w: first", ErrWrongType))
		c.Add(fmt.Errorf("%w: second", ErrOutOfRange))

		err := c.GetError()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrWrongType)
		require.ErrorIs(t, err, ErrOutOfRange)
		assert.Contains(t, err.Error(), "first")
		assert.Contains(t, err.Error(), "second")
	})
}

func TestSentinels(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: capacity -1", ErrInvalidArgument)

	require.ErrorIs(t, wrapped, ErrInvalidArgument)
	require.NotErrorIs(t, wrapped, ErrOutOfRange)
	require.NotErrorIs(t, wrapped, ErrWrongType)
}
