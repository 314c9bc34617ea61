package util

import "github.com/consensys/go-itermore/pkg/util/collection/array"

// Pair provides a simple encapsulation of two items paired together.  A pair
// owns both of its items, hence dropping (or cloning) a pair drops (or clones)
// each item in turn.
type Pair[S any, T any] struct {
	Left  S
	Right T
}

// NewPair returns a new instance of Pair by value.
func NewPair[S any, T any](left S, right T) Pair[S, T] {
	return Pair[S, T]{left, right}
}

// Clone returns a pair of clones.
func (p Pair[S, T]) Clone() Pair[S, T] {
	left := array.Clone(p.Left)
	//
	return Pair[S, T]{left, array.Clone(p.Right)}
}

// Drop releases both items of this pair.
func (p Pair[S, T]) Drop() {
	array.Drop(p.Left)
	array.Drop(p.Right)
}

// Swap returns a pair with the items the other way round.
func (p Pair[S, T]) Swap() Pair[T, S] {
	return Pair[T, S]{p.Right, p.Left}
}
