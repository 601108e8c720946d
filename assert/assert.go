// Package assert provides internal invariant checks. The panicking checks
// can be compiled out with the assertions_disabled build tag.
package assert

import "fmt"

func failure(args []any) string {
	if len(args) == 0 {
		return "assertion failed"
	}

	if format, ok := args[0].(string); ok {
		return fmt.Sprintf(format, args[1:]...)
	}

	return fmt.Sprintf("assertion failed: %v", args)
}
