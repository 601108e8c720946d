package compare

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/amp-labs/arraylist/errors"
	"github.com/amp-labs/arraylist/zero"
)

// ErrNotOrdered is returned when a natural order is requested for values
// that don't have one, or that can't be ordered against each other.
var ErrNotOrdered = fmt.Errorf("%w: no natural order", errors.ErrWrongType)

// lessThan matches the sortable.Sortable shape without importing it.
type lessThan[T any] interface {
	LessThan(other T) bool
}

// Natural resolves the natural order of T.
//
// The order is taken from the first of these that applies:
//   - T implements Ordering[T] (a Compare method)
//   - T has a LessThan(T) bool method, as sortable.Sortable types do
//   - T's underlying kind is an integer, float or string
//
// When T is an interface type the static type says nothing about ordering,
// so the dynamic types of sample decide instead, and their Compare and
// LessThan methods are found by name. Every sampled value must be
// non-nil and of one and the same orderable dynamic type; all violations are
// reported together. The sample is ignored for concrete types.
func Natural[T any](sample ...T) (Comparator[T], error) {
	typ := reflect.TypeFor[T]()

	if typ.Kind() != reflect.Interface {
		if c, ok := forType[T](typ); ok {
			return c, nil
		}

		return nil, fmt.Errorf("%w: %s", ErrNotOrdered, typ)
	}

	return forSample(typ, sample)
}

func forSample[T any](static reflect.Type, sample []T) (Comparator[T], error) {
	if len(sample) == 0 {
		return nil, fmt.Errorf("%w: cannot resolve %s without values", ErrNotOrdered, static)
	}

	var (
		errs    errors.Collection
		dynamic reflect.Type
	)

	for i, elem := range sample {
		typ := reflect.TypeOf(elem)

		switch {
		case typ == nil:
			errs.Add(fmt.Errorf("element %d is nil", i)) //nolint:err113
		case dynamic == nil:
			dynamic = typ
		case typ != dynamic:
			errs.Add(fmt.Errorf("element %d has type %s, expected %s", i, typ, dynamic)) //nolint:err113
		}
	}

	var c Comparator[T]

	if dynamic != nil {
		var ok bool

		c, ok = forType[T](dynamic)
		if !ok {
			errs.Add(fmt.Errorf("type %s is not ordered", dynamic)) //nolint:err113
		}
	}

	if errs.HasError() {
		return nil, fmt.Errorf("%w: %w", ErrNotOrdered, errs.GetError())
	}

	return c, nil
}

// forType builds a comparator for values whose concrete type is typ.
func forType[T any](typ reflect.Type) (Comparator[T], bool) {
	if c, ok := builtin[T](); ok {
		return c, true
	}

	if typ.Implements(reflect.TypeFor[Ordering[T]]()) {
		return func(a, b T) int {
			return any(a).(Ordering[T]).Compare(b) //nolint:forcetypeassert
		}, true
	}

	if typ.Implements(reflect.TypeFor[lessThan[T]]()) {
		return FromLess(func(a, b T) bool {
			return any(a).(lessThan[T]).LessThan(b) //nolint:forcetypeassert
		}), true
	}

	// When T is an interface the checks above want methods taking T, not
	// typ, so look the methods up by name.
	if c, ok := byMethod[T](typ); ok {
		return c, true
	}

	byKind, ok := kindComparator(typ.Kind())
	if !ok {
		return nil, false
	}

	return func(a, b T) int {
		return byKind(reflect.ValueOf(a), reflect.ValueOf(b))
	}, true
}

// byMethod orders values of the concrete type typ through a Compare(typ) int
// or LessThan(typ) bool method, preferring Compare.
func byMethod[T any](typ reflect.Type) (Comparator[T], bool) {
	if method, ok := selfMethod(typ, "Compare", reflect.TypeFor[int]()); ok {
		return func(a, b T) int {
			return int(method.Func.Call([]reflect.Value{reflect.ValueOf(a), reflect.ValueOf(b)})[0].Int())
		}, true
	}

	if method, ok := selfMethod(typ, "LessThan", reflect.TypeFor[bool]()); ok {
		return FromLess(func(a, b T) bool {
			return method.Func.Call([]reflect.Value{reflect.ValueOf(a), reflect.ValueOf(b)})[0].Bool()
		}), true
	}

	return nil, false
}

// selfMethod finds the method name on typ that takes a single typ argument
// and returns a single result of type result.
func selfMethod(typ reflect.Type, name string, result reflect.Type) (reflect.Method, bool) {
	method, ok := typ.MethodByName(name)
	if !ok || typ.Kind() == reflect.Interface {
		return reflect.Method{}, false
	}

	// The receiver is the first input of a method obtained from a type.
	fn := method.Type
	if fn.NumIn() != 2 || fn.In(1) != typ || fn.NumOut() != 1 || fn.Out(0) != result {
		return reflect.Method{}, false
	}

	return method, true
}

// builtin skips reflection for the predeclared ordered types.
func builtin[T any]() (Comparator[T], bool) {
	var c any

	switch any(zero.Value[T]()).(type) {
	case int:
		c = Ordered[int]()
	case int8:
		c = Ordered[int8]()
	case int16:
		c = Ordered[int16]()
	case int32:
		c = Ordered[int32]()
	case int64:
		c = Ordered[int64]()
	case uint:
		c = Ordered[uint]()
	case uint8:
		c = Ordered[uint8]()
	case uint16:
		c = Ordered[uint16]()
	case uint32:
		c = Ordered[uint32]()
	case uint64:
		c = Ordered[uint64]()
	case uintptr:
		c = Ordered[uintptr]()
	case float32:
		c = Ordered[float32]()
	case float64:
		c = Ordered[float64]()
	case string:
		c = Ordered[string]()
	default:
		return nil, false
	}

	typed, ok := c.(Comparator[T])

	return typed, ok
}

func kindComparator(kind reflect.Kind) (func(a, b reflect.Value) int, bool) {
	switch kind { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b reflect.Value) int {
			return cmp.Compare(a.Int(), b.Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b reflect.Value) int {
			return cmp.Compare(a.Uint(), b.Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b reflect.Value) int {
			return cmp.Compare(a.Float(), b.Float())
		}, true
	case reflect.String:
		return func(a, b reflect.Value) int {
			return cmp.Compare(a.String(), b.String())
		}, true
	default:
		return nil, false
	}
}
