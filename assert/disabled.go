//go:build assertions_disabled

package assert

// True asserts that the given value is true. Compiled out by assertions_disabled.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// Bounded asserts that 0 <= length <= capacity. Compiled out by assertions_disabled.
func Bounded(length, capacity int) {
	// Intentionally left blank
}
