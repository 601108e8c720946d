package compare_test

import (
	"slices"
	"testing"

	"github.com/amp-labs/arraylist/compare"
	commonerrors "github.com/amp-labs/arraylist/errors"
	"github.com/amp-labs/arraylist/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type score int

type version struct {
	Major, Minor int
}

func (v version) Compare(other version) int {
	if v.Major != other.Major {
		return v.Major - other.Major
	}

	return v.Minor - other.Minor
}

type point struct {
	X, Y int
}

type task struct {
	Priority int
}

func (t task) LessThan(other task) bool {
	return t.Priority < other.Priority
}

type weight struct {
	Grams int
}

func (w weight) Compare(grams int) int {
	return w.Grams - grams
}

func sortWith[T any](t *testing.T, values []T) []T {
	t.Helper()

	c, err := compare.Natural[T](values...)
	require.NoError(t, err)

	out := slices.Clone(values)
	slices.SortFunc(out, c)

	return out
}

func TestNatural_Concrete(t *testing.T) {
	t.Parallel()

	t.Run("built-in ints", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []int{1, 3, 5, 8}, sortWith(t, []int{5, 3, 8, 1}))
	})

	t.Run("built-in strings", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"a", "b", "c"}, sortWith(t, []string{"c", "a", "b"}))
	})

	t.Run("named type with ordered kind", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []score{-2, 0, 7}, sortWith(t, []score{7, -2, 0}))
	})

	t.Run("unsigned and float kinds", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []uint16{1, 2, 3}, sortWith(t, []uint16{3, 1, 2}))
		assert.Equal(t, []float32{-1.5, 0, 2.25}, sortWith(t, []float32{2.25, -1.5, 0}))
	})

	t.Run("Compare method", func(t *testing.T) {
		t.Parallel()

		got := sortWith(t, []version{{1, 2}, {0, 9}, {1, 0}})
		assert.Equal(t, []version{{0, 9}, {1, 0}, {1, 2}}, got)
	})

	t.Run("sortable wrapper", func(t *testing.T) {
		t.Parallel()

		got := sortWith(t, []sortable.String{"pear", "apple", "fig"})
		assert.Equal(t, []sortable.String{"apple", "fig", "pear"}, got)
	})

	t.Run("concrete type ignores empty sample", func(t *testing.T) {
		t.Parallel()

		c, err := compare.Natural[int]()
		require.NoError(t, err)
		assert.Negative(t, c(1, 2))
	})

	t.Run("struct without order fails", func(t *testing.T) {
		t.Parallel()

		_, err := compare.Natural[point](point{1, 2})
		require.ErrorIs(t, err, compare.ErrNotOrdered)
		require.ErrorIs(t, err, commonerrors.ErrWrongType)
		assert.Contains(t, err.Error(), "point")
	})

	t.Run("bool fails", func(t *testing.T) {
		t.Parallel()

		_, err := compare.Natural[bool]()
		require.ErrorIs(t, err, compare.ErrNotOrdered)
	})
}

func TestNatural_Interface(t *testing.T) {
	t.Parallel()

	t.Run("uniform dynamic type", func(t *testing.T) {
		t.Parallel()

		got := sortWith(t, []any{3, 1, 2})
		assert.Equal(t, []any{1, 2, 3}, got)
	})

	t.Run("mixed dynamic types", func(t *testing.T) {
		t.Parallel()

		_, err := compare.Natural[any](1, "two", 3)
		require.ErrorIs(t, err, compare.ErrNotOrdered)
		assert.Contains(t, err.Error(), "element 1 has type string, expected int")
	})

	t.Run("nil elements are reported", func(t *testing.T) {
		t.Parallel()

		_, err := compare.Natural[any](1, nil, 2, nil)
		require.ErrorIs(t, err, compare.ErrNotOrdered)
		assert.Contains(t, err.Error(), "element 1 is nil")
		assert.Contains(t, err.Error(), "element 3 is nil")
	})

	t.Run("unordered dynamic type", func(t *testing.T) {
		t.Parallel()

		_, err := compare.Natural[any](point{1, 1}, point{2, 2})
		require.ErrorIs(t, err, compare.ErrNotOrdered)
		assert.Contains(t, err.Error(), "is not ordered")
	})

	t.Run("Compare method on the dynamic type", func(t *testing.T) {
		t.Parallel()

		got := sortWith(t, []any{version{2, 0}, version{1, 5}, version{1, 0}})
		assert.Equal(t, []any{version{1, 0}, version{1, 5}, version{2, 0}}, got)
	})

	t.Run("LessThan method on the dynamic type", func(t *testing.T) {
		t.Parallel()

		got := sortWith(t, []any{task{3}, task{1}, task{2}})
		assert.Equal(t, []any{task{1}, task{2}, task{3}}, got)
	})

	t.Run("sortable wrapper behind an interface", func(t *testing.T) {
		t.Parallel()

		got := sortWith(t, []any{sortable.String("b"), sortable.String("a")})
		assert.Equal(t, []any{sortable.String("a"), sortable.String("b")}, got)
	})

	t.Run("Compare taking another type is not an order", func(t *testing.T) {
		t.Parallel()

		_, err := compare.Natural[any](weight{2}, weight{1})
		require.ErrorIs(t, err, compare.ErrNotOrdered)
		assert.Contains(t, err.Error(), "compare_test.weight is not ordered")
	})

	t.Run("no sample", func(t *testing.T) {
		t.Parallel()

		_, err := compare.Natural[any]()
		require.ErrorIs(t, err, compare.ErrNotOrdered)
	})
}
