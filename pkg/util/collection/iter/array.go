// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package iter

import "github.com/consensys/go-itermore/pkg/util/collection/array"

// ArrayIterator provides a by-value iterator implementation for an array.
// Items are moved out of the array as they are visited.
type ArrayIterator[T any] struct {
	items *array.IntoIter[T]
}

// NewArrayIterator construct an iterator over an array of items.  The iterator
// takes ownership of the array.
func NewArrayIterator[T any](items []T) *ArrayIterator[T] {
	return &ArrayIterator[T]{array.NewIntoIter(items)}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *ArrayIterator[T]) HasNext() bool {
	return p.items.HasNext()
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *ArrayIterator[T]) Next() T {
	return p.items.Next()
}

// NextBack returns the last item remaining, or false if there are none.
func (p *ArrayIterator[T]) NextBack() (T, bool) {
	return p.items.NextBack()
}

// Len returns the exact number of items remaining.
func (p *ArrayIterator[T]) Len() uint {
	return p.items.Len()
}

// Append another iterator onto the end of this iterator.  Thus, when all
// items are visited in this iterator, iteration continues into the other.
//
//nolint:revive
func (p *ArrayIterator[T]) Append(iter Iterator[T]) Iterator[T] {
	return NewAppendIterator(p, iter)
}

// Clone creates a copy of this iterator at the given cursor position.
// Modifying the clone (i.e. by calling Next) iterator will not modify the
// original.
//
//nolint:revive
func (p *ArrayIterator[T]) Clone() Iterator[T] {
	return &ArrayIterator[T]{p.items.Clone()}
}

// Collect allocates a new array containing all items of this iterator.
// This drains the iterator.
//
//nolint:revive
func (p *ArrayIterator[T]) Collect() []T {
	items := make([]T, 0, p.items.Len())
	//
	for p.items.HasNext() {
		items = append(items, p.items.Next())
	}
	//
	return items
}

// Count returns the number of items left in the iterator
//
//nolint:revive
func (p *ArrayIterator[T]) Count() uint {
	return p.items.Len()
}

// Find returns the index of the first match for a given predicate, or
// return false if no match is found.
//
//nolint:revive
func (p *ArrayIterator[T]) Find(predicate Predicate[T]) (uint, bool) {
	return Find(p, predicate)
}

// Nth returns the nth item in this iterator
//
//nolint:revive
func (p *ArrayIterator[T]) Nth(n uint) T {
	if n >= p.items.Len() {
		panic("iterator out-of-bounds")
	}
	// Drop everything skipped
	for range n {
		array.Drop(p.items.Next())
	}
	//
	return p.items.Next()
}

// Drop releases any items remaining.
func (p *ArrayIterator[T]) Drop() {
	p.items.Drop()
}

func (p *ArrayIterator[T]) String() string {
	return p.items.String()
}
