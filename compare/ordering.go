package compare

// Ordering is the result of comparing two values. It follows the usual
// signed-integer convention (negative, zero, positive), so a comparator
// returning Ordering can be handed to slices.SortFunc and friends with a
// plain int conversion.
type Ordering int

const (
	// Less means the first value sorts before the second.
	Less Ordering = -1

	// Equal means the two values occupy the same position in the order.
	Equal Ordering = 0

	// Greater means the first value sorts after the second.
	Greater Ordering = 1
)

// OrderingOf normalizes any signed comparison result (such as the value
// returned by strings.Compare or cmp.Compare) to Less, Equal, or Greater.
func OrderingOf(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

// IsLess returns true if the Ordering is Less.
func (o Ordering) IsLess() bool {
	return o < Equal
}

// IsEqual returns true if the Ordering is Equal.
func (o Ordering) IsEqual() bool {
	return o == Equal
}

// IsGreater returns true if the Ordering is Greater.
func (o Ordering) IsGreater() bool {
	return o > Equal
}

// Reverse flips the Ordering: Less becomes Greater and vice versa.
// Equal is unchanged.
func (o Ordering) Reverse() Ordering {
	return -o
}

// String returns "Less", "Equal", or "Greater".
func (o Ordering) String() string {
	switch {
	case o < Equal:
		return "Less"
	case o > Equal:
		return "Greater"
	default:
		return "Equal"
	}
}
