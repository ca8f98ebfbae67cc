// Package optional provides a type-safe Optional type for representing values
// that may or may not be present. It is designed to avoid nil-related panics
// by explicitly modeling the presence or absence of a value.
// An Optional is conceptually a set of size zero or one.
package optional

import (
	"fmt"
	"iter"
)

// Value represents a value that may or may not be present.
// It is a generic type that can hold any value of type T.
// Use Some(value) to create a Value with a value, or None() for an empty Value.
//
// The zero Value is None, so Value fields need no explicit initialization.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value with no value.
func None[T any]() Value[T] {
	return Value[T]{isSet: false}
}

// Get returns the value and a boolean indicating whether the value is present.
// This is the safe way to extract a value from a Value.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or the provided default value if empty.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// GetOrPanic returns the value if present, or panics if empty.
// Use this only when you are certain the Value contains a value.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// All returns an iterator that yields the value if present, or yields nothing
// if empty. This allows using Value in Go's range loops.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// Equals compares this Value with another using the provided equality function.
// Two Values are equal if both are empty, or both contain values that are equal
// according to the provided function.
func (o Value[T]) Equals(other Value[T], eq func(T, T) bool) bool {
	if o.isSet != other.isSet {
		return false
	}

	if !o.isSet {
		return true
	}

	return eq(o.value, other.value)
}

// String returns a string representation of the Value.
// Returns "Some(value)" if present, or "None" if empty.
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map transforms the value inside the Value using the provided function.
// Returns Some(f(value)) if the Value contains a value, or None if empty.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}
