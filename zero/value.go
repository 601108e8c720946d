// Package zero provides the zero value of a type parameter.
package zero

// Value returns the zero value for type T. Containers use it both as the
// result that accompanies an error and to overwrite storage slots that no
// longer hold a live element, so the garbage collector can reclaim whatever
// the slot used to reference.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
