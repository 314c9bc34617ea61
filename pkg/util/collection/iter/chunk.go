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
	"github.com/consensys/go-itermore/pkg/util/collection/array"
)

// NextChunk advances a given enumerator by n items, returning them as an
// array.  If there are not enough items to fill the array, then the error
// returned is an *array.ShortfallError holding the items which were consumed.
// Items not consumed remain in the enumerator.
func NextChunk[T any](e Enumerator[T], n uint) ([]T, error) {
	return array.Collect(n, Poll(e))
}

// Chunks is an enumerator over non-overlapping chunks of n items at a time,
// taken from some underlying enumerator.  If n does not divide the number of
// items available, then the last (up to) n-1 items are not returned as a
// chunk.  Instead, they are held in a remainder cursor.
type Chunks[T any] struct {
	source Enumerator[T]
	n      uint
	// Chunk read ahead by HasNext
	pending []T
	// Items left over once the source was exhausted
	remainder *array.IntoIter[T]
}

// NewChunks constructs an enumerator over chunks of size n.  This panics if n
// is zero.
func NewChunks[T any](source Enumerator[T], n uint) *Chunks[T] {
	if n == 0 {
		panic("chunk size must be non-zero")
	}
	//
	return &Chunks[T]{source: source, n: n}
}

// HasNext checks whether or not there are any chunks remaining to visit.
//
//nolint:revive
func (p *Chunks[T]) HasNext() bool {
	if p.pending == nil && p.remainder == nil {
		chunk, err := NextChunk(p.source, p.n)
		//
		if err != nil {
			p.remainder = remainderOf[T](err)
		} else {
			p.pending = chunk
		}
	}
	//
	return p.pending != nil
}

// Next returns the next chunk, and advance the enumerator.
//
//nolint:revive
func (p *Chunks[T]) Next() []T {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	chunk := p.pending
	p.pending = nil
	//
	return chunk
}

// NextBack returns the last whole chunk, or false if there are none.  This
// requires the underlying enumerator be double ended.  Any items beyond the
// last whole chunk are dropped.
func (p *Chunks[T]) NextBack() ([]T, bool) {
	source, ok := p.source.(DoubleEnded[T])
	//
	if !ok {
		panic("enumerator is not double ended")
	}
	// Discard the tail which cannot form a whole chunk
	for range source.Len() % p.n {
		if item, ok := source.NextBack(); ok {
			array.Drop(item)
		}
	}
	// Items are pulled back to front, so are collected in reverse.
	chunk, err := array.CollectReversed(p.n, source.NextBack)
	//
	if err == nil {
		return chunk, true
	}
	// Since the source length is a multiple of n, this can only be empty.
	remainderOf[T](err).Drop()
	// The read ahead chunk (if any) is now last.
	if p.pending != nil {
		chunk = p.pending
		p.pending = nil
		//
		return chunk, true
	}
	//
	return nil, false
}

// Nth skips (and drops) n chunks, returning the one which follows (if any).
func (p *Chunks[T]) Nth(n uint) ([]T, bool) {
	for i := uint(0); p.HasNext(); i++ {
		chunk := p.Next()
		//
		if i == n {
			return chunk, true
		}
		//
		array.DropAll(chunk)
	}
	//
	return nil, false
}

// Count returns the number of chunks left, provided the underlying enumerator
// can count its items without being consumed.  Otherwise, the chunks are
// drained to count them.
func (p *Chunks[T]) Count() uint {
	if p.remainder != nil {
		return 0
	} else if c, ok := p.source.(interface{ Count() uint }); ok {
		count := c.Count() / p.n
		//
		if p.pending != nil {
			count++
		}
		//
		return count
	}
	//
	count := uint(0)
	//
	for p.HasNext() {
		array.DropAll(p.Next())
		count++
	}
	//
	return count
}

// Remainder returns the items left over once the underlying enumerator has
// been exhausted.  This returns nil whilst there are chunks remaining.
func (p *Chunks[T]) Remainder() *array.IntoIter[T] {
	if p.HasNext() {
		return nil
	}
	//
	return p.remainder
}

// Drop releases the read ahead chunk, the remainder and the underlying
// enumerator.
func (p *Chunks[T]) Drop() {
	array.DropAll(p.pending)
	p.pending = nil
	//
	if p.remainder != nil {
		p.remainder.Drop()
	}
	//
	Release[T](p.source)
}

// Extract the remainder cursor from a shortfall reported by the array package.
func remainderOf[T any](err error) *array.IntoIter[T] {
	return err.(*array.ShortfallError[T]).Remainder
}
