// Package collnum orders collector numbers: the printed identifiers of
// catalog items such as trading cards.
//
// # Overview
//
// Collector numbers are short strings mixing digits and letters ("10", "10a",
// "ap0a", "★"), optionally paired with a side marker that distinguishes the
// faces of a multi-faced item. A [Key] holds one (number, side) pair, and
// [Compare] defines a strict total order over keys so that independently
// generated catalogs sort into byte-identical listings.
//
// The order is not plain lexicographic. In outline:
//
//   - Keys with the same number string are ordered by side alone.
//   - Otherwise the digits embedded in each number are extracted, in order,
//     into a digit run; a number with no digits at all uses the sentinel run
//     "100000" and therefore sorts with the very large numbers.
//   - Purely numeric numbers order by numeric magnitude, and beat mixed
//     alphanumeric numbers of the same magnitude ("2" before "2a"-style
//     schemes, "00" before "00a").
//   - Remaining ties break by digit-run length (so "0" precedes "00"), then
//     by side, then by the full number string.
//
// # Usage
//
// Compare plugs directly into the standard sort routines:
//
//	keys := []collnum.Key{
//	    collnum.New("10"),
//	    collnum.New("2"),
//	    collnum.NewWithSide("2", "b"),
//	    collnum.NewWithSide("2", "a"),
//	}
//
//	slices.SortStableFunc(keys, func(a, b collnum.Key) int {
//	    return int(collnum.Compare(a, b))
//	})
//	// Order: 2, 2/a, 2/b, 10
//
// Key also implements [github.com/cardstock/catalog-common/compare.Sortable]
// and [github.com/cardstock/catalog-common/hashing.Hashable], so keys can
// serve as elements of sorted or hash-keyed collections.
//
// # Determinism
//
// Compare is a pure function: no state, no I/O, no allocation beyond the
// transient digit runs. It is safe for concurrent use and resolves every pair
// of distinct keys to Less or Greater, so any comparison sort built on it
// reproduces one specific permutation regardless of input order. Use a stable
// sort if the input may contain fully identical keys.
package collnum
