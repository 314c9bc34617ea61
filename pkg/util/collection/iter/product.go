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

import (
	"github.com/consensys/go-itermore/pkg/util"
	"github.com/consensys/go-itermore/pkg/util/collection/array"
)

// CartesianProduct is an enumerator over every pairing of an item from a left
// enumerator with an item from a right iterator.  The right iterator is cloned
// afresh for each left item, whilst each left item is cloned once per pair.
type CartesianProduct[A, B any] struct {
	a Enumerator[A]
	b Iterator[B]
	// Current left item
	aItem A
	hasA  bool
	// Current pass over the right
	bCurr Iterator[B]
	// Pair read ahead by HasNext
	pending util.Option[util.Pair[A, B]]
}

// NewCartesianProduct constructs the product of two enumerators.
func NewCartesianProduct[A, B any](a Enumerator[A], b Iterator[B]) *CartesianProduct[A, B] {
	p := &CartesianProduct[A, B]{a: a, b: b, bCurr: b.Clone(), pending: util.None[util.Pair[A, B]]()}
	//
	if a.HasNext() {
		p.aItem, p.hasA = a.Next(), true
	}
	//
	return p
}

// HasNext checks whether or not there are any pairs remaining to visit.
//
//nolint:revive
func (p *CartesianProduct[A, B]) HasNext() bool {
	if p.pending.IsEmpty() && p.hasA {
		p.pending = p.advance()
	}
	//
	return p.pending.HasValue()
}

// Next returns the next pair, and advance the enumerator.
//
//nolint:revive
func (p *CartesianProduct[A, B]) Next() util.Pair[A, B] {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	return p.pending.Take().Unwrap()
}

// Drop releases all items held by the product, including those of both
// underlying enumerators.
func (p *CartesianProduct[A, B]) Drop() {
	p.pending.Drop()
	p.dropA()
	Release[B](p.bCurr)
	Release[B](p.b)
	Release[A](p.a)
}

func (p *CartesianProduct[A, B]) advance() util.Option[util.Pair[A, B]] {
	if !p.bCurr.HasNext() {
		// Start another pass over the right
		Release[B](p.bCurr)
		p.bCurr = p.b.Clone()
		p.dropA()
		//
		if !p.bCurr.HasNext() || !p.a.HasNext() {
			return util.None[util.Pair[A, B]]()
		}
		//
		p.aItem, p.hasA = p.a.Next(), true
	}
	//
	return util.Some(util.NewPair(array.Clone(p.aItem), p.bCurr.Next()))
}

func (p *CartesianProduct[A, B]) dropA() {
	if p.hasA {
		var empty A
		//
		array.Drop(p.aItem)
		p.aItem, p.hasA = empty, false
	}
}
