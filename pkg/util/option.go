package util

import "github.com/consensys/go-itermore/pkg/util/collection/array"

// Option provides a simple encoding for an optional value, such as the result
// of an operation over a possibly empty sequence.
type Option[T any] struct {
	// Indicates whether value present
	some bool
	// The value itself
	value T
}

// Some constructs an option which holds a value.
func Some[T any](val T) Option[T] {
	return Option[T]{true, val}
}

// None constructs an option which doesn't hold a value.
func None[T any]() Option[T] {
	var empty T
	return Option[T]{false, empty}
}

// HasValue indicates whether or not this option contains an actual value, or
// whether it is empty.
func (o Option[T]) HasValue() bool {
	return o.some
}

// IsEmpty indicates whether or not this option is empty (i.e. contains no value).
func (o Option[T]) IsEmpty() bool {
	return !o.some
}

// Unwrap returns the value contained, or panics if this option is empty.
func (o Option[T]) Unwrap() T {
	if o.some {
		return o.value
	}
	//
	panic("cannot unwrap an empty option")
}

// UnwrapOr returns the value contained, or the given default if this option is
// empty.
func (o Option[T]) UnwrapOr(def T) T {
	if o.some {
		return o.value
	}
	//
	return def
}

// Take moves the value out of this option (if any), leaving it empty.
func (o *Option[T]) Take() Option[T] {
	taken := *o
	*o = None[T]()
	//
	return taken
}

// Drop releases the value contained (if any), leaving this option empty.
func (o *Option[T]) Drop() {
	if taken := o.Take(); taken.some {
		array.Drop(taken.value)
	}
}
