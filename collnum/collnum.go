package collnum

import (
	"fmt"
	"hash"
	"strings"

	"github.com/cardstock/catalog-common/compare"
	"github.com/cardstock/catalog-common/hashing"
	"github.com/cardstock/catalog-common/optional"
)

// Key is a collector-number key: the printed number of a catalog item plus
// its optional side marker. Keys are immutable values; construct them with
// New or NewWithSide and pass them by value.
type Key struct {
	// Number is the printed collector number. Any Unicode string is valid,
	// including the empty string; characters other than ASCII digits are
	// treated as non-digits.
	Number string

	// Side distinguishes the faces of a multi-faced item sharing one
	// collector number. An absent side and an empty side order identically.
	Side optional.Value[string]
}

// Compile-time checks that Key satisfies the ordering and hashing contracts.
var (
	_ compare.Sortable[Key] = (*Key)(nil)
	_ hashing.Hashable      = (*Key)(nil)
)

// New returns a Key for a collector number with no side marker.
func New(number string) Key {
	return Key{Number: number, Side: optional.None[string]()}
}

// NewWithSide returns a Key for one side of a multi-faced item.
func NewWithSide(number, side string) Key {
	return Key{Number: number, Side: optional.Some(side)}
}

// side normalizes the side marker: absent and empty are the same.
func (k Key) side() string {
	return k.Side.GetOrElse("")
}

// Compare establishes the strict total order over collector-number keys.
// It is pure and safe for concurrent use, and never fails: every Unicode
// string is a valid number, including strings with no digits at all.
//
// The cascade below mirrors the reference catalog pipeline rule for rule.
// Each branch decides the order completely; no branch falls through.
func Compare(a, b Key) compare.Ordering {
	// Identical printed numbers are split by side alone.
	if a.Number == b.Number {
		return compare.OrderingOf(strings.Compare(a.side(), b.side()))
	}

	aRun, aPure := digitRun(a.Number)
	bRun, bPure := digitRun(b.Number)
	values := compareRunValues(aRun, bRun)

	switch {
	case aPure && bPure:
		// Both purely numeric: magnitude, then zero-padding length, then side.
		if values != 0 {
			return compare.OrderingOf(values)
		}

		if c := compareRunLengths(aRun, bRun); c != 0 {
			return compare.OrderingOf(c)
		}

		return compare.OrderingOf(strings.Compare(a.side(), b.side()))
	case aPure:
		// A purely numeric key precedes a mixed key of equal magnitude.
		if values == 0 {
			return compare.Less
		}

		return compare.OrderingOf(values)
	case bPure:
		if values == 0 {
			return compare.Greater
		}

		return compare.OrderingOf(values)
	default:
		// Neither is purely numeric. Identical digit runs (including two
		// digit-less numbers sharing the sentinel) fall back to side, or to
		// the full number string when neither key has a side.
		if aRun == bRun {
			if a.side() == "" && b.side() == "" {
				return compare.OrderingOf(strings.Compare(a.Number, b.Number))
			}

			return compare.OrderingOf(strings.Compare(a.side(), b.side()))
		}

		// Equal magnitude but different runs means different zero padding:
		// shorter run first, then side.
		if values != 0 {
			return compare.OrderingOf(values)
		}

		if c := compareRunLengths(aRun, bRun); c != 0 {
			return compare.OrderingOf(c)
		}

		return compare.OrderingOf(strings.Compare(a.side(), b.side()))
	}
}

// Less reports whether a sorts before b. It is the comparator in predicate
// form, for sort routines that take a less function.
func Less(a, b Key) bool {
	return Compare(a, b).IsLess()
}

// Compare orders this key against another. See the package-level Compare.
func (k Key) Compare(other Key) compare.Ordering {
	return Compare(k, other)
}

// Equals reports whether two keys occupy the same position in the order:
// same number and same normalized side.
func (k Key) Equals(other Key) bool {
	return k.Number == other.Number && k.side() == other.side()
}

// LessThan reports whether this key sorts before the other.
func (k Key) LessThan(other Key) bool {
	return Compare(k, other).IsLess()
}

// UpdateHash feeds the key's identity into h. The number and side are
// separated by a NUL byte so ("1a", "") and ("1", "a") hash differently.
func (k Key) UpdateHash(h hash.Hash) error {
	if _, err := h.Write([]byte(k.Number)); err != nil {
		return err
	}

	if _, err := h.Write([]byte{0}); err != nil {
		return err
	}

	if _, err := h.Write([]byte(k.side())); err != nil {
		return err
	}

	return nil
}

// String renders the key as "number" or "number/side".
func (k Key) String() string {
	if side := k.side(); side != "" {
		return fmt.Sprintf("%s/%s", k.Number, side)
	}

	return k.Number
}
