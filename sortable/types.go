package sortable

import (
	"cmp"

	"github.com/amp-labs/arraylist/compare"
)

// Int is a sortable wrapper type for the built-in int type.
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

var (
	_ Sortable[Int]         = (*Int)(nil)
	_ compare.Ordering[Int] = (*Int)(nil)
)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Compare returns -1, 0 or +1 depending on whether i is less than, equal to
// or greater than other.
func (i Int) Compare(other Int) int {
	return cmp.Compare(int(i), int(other))
}

// Float is a sortable wrapper type for float64. NaN orders before every
// other value and equals itself, which keeps the order total.
type Float float64

var (
	_ Sortable[Float]         = (*Float)(nil)
	_ compare.Ordering[Float] = (*Float)(nil)
)

func (f Float) Equals(other Float) bool {
	return f.Compare(other) == 0
}

func (f Float) LessThan(other Float) bool {
	return cmp.Less(float64(f), float64(other))
}

func (f Float) Compare(other Float) int {
	return cmp.Compare(float64(f), float64(other))
}

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

var (
	_ Sortable[Byte]         = (*Byte)(nil)
	_ compare.Ordering[Byte] = (*Byte)(nil)
)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// LessThan returns true if this Byte is numerically less than the other Byte.
func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}

func (b Byte) Compare(other Byte) int {
	return cmp.Compare(byte(b), byte(other))
}

// String is a sortable wrapper type for string, ordered bytewise.
type String string

var (
	_ Sortable[String]         = (*String)(nil)
	_ compare.Ordering[String] = (*String)(nil)
)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

func (s String) Compare(other String) int {
	return cmp.Compare(string(s), string(other))
}
