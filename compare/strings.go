package compare

import (
	"cmp"

	"facette.io/natsort"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// NaturalStrings orders strings the way a person would, treating runs of
// digits as numbers: "file2" sorts before "file10".
func NaturalStrings() Comparator[string] {
	return func(a, b string) int {
		if a == b {
			return 0
		}

		before, after := natsort.Compare(a, b), natsort.Compare(b, a)

		switch {
		case before && !after:
			return -1
		case after && !before:
			return 1
		default:
			// natsort answers the same both ways for equivalent spellings
			// such as "a01" and "a1"; fall back to byte order.
			return cmp.Compare(a, b)
		}
	}
}

// Collation orders strings according to the collation rules of the given
// language. The returned comparator owns a collator and must not be shared
// between goroutines.
//
// Example:
//
//	list.Sort(compare.Collation(language.Swedish))
func Collation(tag language.Tag, opts ...collate.Option) Comparator[string] {
	return collate.New(tag, opts...).CompareString
}

// FoldedStrings orders strings by their Unicode case folding, so "Go", "GO"
// and "go" are equivalent. Like Collation, the comparator is stateful.
func FoldedStrings() Comparator[string] {
	caser := cases.Fold()

	return func(a, b string) int {
		return cmp.Compare(caser.String(a), caser.String(b))
	}
}
