package compare

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type account struct {
	ID    int
	Email string
}

func (a account) Equals(other account) bool {
	return a.ID == other.ID
}

type caseless string

func (s caseless) Equals(other caseless) bool {
	return strings.EqualFold(string(s), string(other))
}

func TestEquals(t *testing.T) {
	t.Parallel()

	t.Run("delegates to the Equals method", func(t *testing.T) {
		t.Parallel()

		a := account{ID: 1, Email: "a@example.com"}
		b := account{ID: 1, Email: "changed@example.com"}
		c := account{ID: 2, Email: "a@example.com"}

		assert.True(t, Equals[account](a, b))
		assert.False(t, Equals[account](a, c))
	})

	t.Run("custom semantics", func(t *testing.T) {
		t.Parallel()

		assert.True(t, Equals[caseless](caseless("Hello"), caseless("HELLO")))
		assert.False(t, Equals[caseless](caseless("Hello"), caseless("World")))
	})

	t.Run("reflexive and symmetric", func(t *testing.T) {
		t.Parallel()

		values := []caseless{"a", "A", "b"}

		for _, x := range values {
			assert.True(t, x.Equals(x))

			for _, y := range values {
				assert.Equal(t, x.Equals(y), y.Equals(x))
			}
		}
	})
}
