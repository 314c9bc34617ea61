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

// Projection is a function mapping each item of one iterator onto an item of
// another.  It borrows the source item, which is released once projected, so
// anything it wants to keep must be cloned.
type Projection[S, T any] func(S) T

// projectIterator is an iterator over the images of another iterator's items.
type projectIterator[S, T any] struct {
	source Iterator[S]
	fn     Projection[S, T]
}

// NewProjectIterator construct an iterator that is the projection of another.
// Source items are released as soon as they have been projected.
func NewProjectIterator[S, T any](source Iterator[S], fn Projection[S, T]) Iterator[T] {
	return &projectIterator[S, T]{source, fn}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *projectIterator[S, T]) HasNext() bool {
	return p.source.HasNext()
}

// Next returns the next item, and advance the iterator.
//
//nolint:revive
func (p *projectIterator[S, T]) Next() T {
	return p.project(p.source.Next())
}

// Append another iterator onto the end of this iterator.
//
//nolint:revive
func (p *projectIterator[S, T]) Append(iter Iterator[T]) Iterator[T] {
	return NewAppendIterator[T](p, iter)
}

// Clone creates a copy of this iterator at the given cursor position, over a
// clone of the source.
//
//nolint:revive
func (p *projectIterator[S, T]) Clone() Iterator[T] {
	return &projectIterator[S, T]{p.source.Clone(), p.fn}
}

// Collect projects every remaining item into a new array.  This drains the
// iterator.
//
//nolint:revive
func (p *projectIterator[S, T]) Collect() []T {
	items := make([]T, 0, p.source.Count())
	//
	for p.source.HasNext() {
		items = append(items, p.Next())
	}
	//
	return items
}

// Count returns the number of items left, which is the number left in the
// source.
//
//nolint:revive
func (p *projectIterator[S, T]) Count() uint {
	return p.source.Count()
}

// Find returns the index of the first item whose image matches a given
// predicate.  Images are only needed for the test, so are released straight
// away.
//
//nolint:revive
func (p *projectIterator[S, T]) Find(predicate Predicate[T]) (uint, bool) {
	return p.source.Find(func(item S) bool {
		image := p.fn(item)
		defer array.Drop(image)
		//
		return predicate(image)
	})
}

// Nth returns the image of the nth item.  Items skipped are released by the
// source.
//
//nolint:revive
func (p *projectIterator[S, T]) Nth(n uint) T {
	return p.project(p.source.Nth(n))
}

// Drop releases any items remaining in the source.
func (p *projectIterator[S, T]) Drop() {
	Release[S](p.source)
}

// Map one source item, releasing it afterwards even if the projection panics.
func (p *projectIterator[S, T]) project(item S) T {
	defer array.Drop(item)
	//
	return p.fn(item)
}
