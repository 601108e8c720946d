//go:build !assertions_disabled

package assert

// True asserts that the given value is true.
// If the assertion fails, it panics with a message.
// The optional args can be used to provide a formatted panic message:
// - If the first arg is a string, it's used as a format string with remaining args.
// - Otherwise, all args are included in the panic message.
func True(value bool, args ...any) {
	if value {
		return
	}

	panic(failure(args))
}

// Bounded asserts that 0 <= length <= capacity, the invariant every
// array-backed container keeps between its logical size and its storage.
func Bounded(length, capacity int) {
	True(length >= 0 && length <= capacity, "length %d outside storage capacity %d", length, capacity)
}
