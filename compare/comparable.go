// Package compare provides the small ordering contracts the rest of the
// module is built on: equality via Comparable, ordering via Sortable, and
// the three-valued Ordering result produced by comparators.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Sortable extends Comparable with an ordering relation. Types implementing
// Sortable can be used as keys in sorted collections and as elements of any
// comparison-based sort.
type Sortable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}
