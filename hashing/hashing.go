// Package hashing fingerprints container contents. A Hashable value writes
// itself into a hash.Hash; a HashFunc turns that into a printable digest.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"math"
	"reflect"

	"github.com/OneOfOne/xxhash"
	"github.com/amp-labs/arraylist/utils"
	"github.com/zeebo/xxh3"
)

// ErrUnsupportedType is returned when attempting to hash an unsupported type.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 digest of the given Hashable as a hex-encoded
// string. Much faster than Sha256; not suitable where collisions matter.
func Xxh3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// XxHash64 returns the XXH64 digest of the given Hashable as a hex-encoded string.
func XxHash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashableString hashes the raw bytes of a string.
type HashableString string

func (s HashableString) UpdateHash(h hash.Hash) error {
	_, err := h.Write([]byte(s))

	return err
}

// HashableBytes hashes a byte slice as-is.
type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	_, err := h.Write(b)

	return err
}

// UpdateHash writes a single element into h. Hashable values hash
// themselves. Booleans, integers, floats, strings and byte slices (including
// named types built on them) are encoded with a fixed width or a length
// prefix, so that a sequence of elements hashes unambiguously: ["ab", "c"]
// and ["a", "bc"] produce different digests.
func UpdateHash(h hash.Hash, value any) error { //nolint:cyclop
	switch typed := value.(type) {
	case Hashable:
		if isNilPointer(typed) {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, value)
		}

		return typed.UpdateHash(h)
	case string:
		return writeBytes(h, []byte(typed))
	case []byte:
		return writeBytes(h, typed)
	case bool:
		if typed {
			return writeUint64(h, 1)
		}

		return writeUint64(h, 0)
	case int:
		return writeUint64(h, uint64(typed)) //nolint:gosec
	case int64:
		return writeUint64(h, uint64(typed)) //nolint:gosec
	case uint64:
		return writeUint64(h, typed)
	case float64:
		return writeUint64(h, math.Float64bits(typed))
	}

	return updateHashByKind(h, value)
}

// isNilPointer is true for a nil pointer whose method set borrows value
// receivers; calling those would dereference nil.
func isNilPointer(value any) bool {
	return reflect.TypeOf(value).Kind() == reflect.Pointer && utils.IsNilish(value)
}

func updateHashByKind(h hash.Hash, value any) error {
	val := reflect.ValueOf(value)

	switch val.Kind() { //nolint:exhaustive
	case reflect.Bool:
		if val.Bool() {
			return writeUint64(h, 1)
		}

		return writeUint64(h, 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return writeUint64(h, uint64(val.Int())) //nolint:gosec
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return writeUint64(h, val.Uint())
	case reflect.Float32, reflect.Float64:
		return writeUint64(h, math.Float64bits(val.Float()))
	case reflect.String:
		return writeBytes(h, []byte(val.String()))
	case reflect.Slice:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			return writeBytes(h, val.Bytes())
		}
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
}

func writeUint64(h hash.Hash, v uint64) error {
	_, err := h.Write(binary.LittleEndian.AppendUint64(nil, v))

	return err
}

func writeBytes(h hash.Hash, b []byte) error {
	if err := writeUint64(h, uint64(len(b))); err != nil {
		return err
	}

	_, err := h.Write(b)

	return err
}
