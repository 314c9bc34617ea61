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

const (
	combFirst = iota
	combNormal
	combDone
)

// Combinations is an enumerator over all k-length combinations of the items
// from some underlying enumerator, without repetition.  Combinations are
// emitted in lexicographic order of item position, and each is a fresh array
// of clones.  Items are pulled from the underlying enumerator only as needed.
type Combinations[T any] struct {
	combinations[T]
}

// NewCombinations constructs an enumerator over combinations of size k.  This
// panics if k is zero.
func NewCombinations[T any](source Enumerator[T], k uint) *Combinations[T] {
	if k == 0 {
		panic("combination size must be non-zero")
	}
	// Initially, the first k positions
	var i uint
	//
	comb := array.CollectUnchecked(k, func() (uint, bool) {
		i++
		return i - 1, true
	})
	//
	return &Combinations[T]{combinations[T]{source: source, comb: comb}}
}

// HasNext checks whether or not there are any combinations remaining.
//
//nolint:revive
func (p *Combinations[T]) HasNext() bool {
	if p.pending == nil && p.state != combDone {
		p.pending = p.fillNext()
	}
	//
	return p.pending != nil
}

// Next returns the next combination, and advance the enumerator.
//
//nolint:revive
func (p *Combinations[T]) Next() []T {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	return p.take()
}

// CombinationsWithReps is an enumerator over all k-length sequences of the
// items from some underlying enumerator, where items may be repeated.  Thus,
// for n items there are n^k results, emitted in lexicographic order of item
// position.
type CombinationsWithReps[T any] struct {
	combinations[T]
}

// NewCombinationsWithReps constructs an enumerator over combinations (with
// repetition) of size k.  This panics if k is zero.
func NewCombinationsWithReps[T any](source Enumerator[T], k uint) *CombinationsWithReps[T] {
	if k == 0 {
		panic("combination size must be non-zero")
	}
	//
	return &CombinationsWithReps[T]{combinations[T]{source: source, comb: make([]uint, k)}}
}

// HasNext checks whether or not there are any combinations remaining.
//
//nolint:revive
func (p *CombinationsWithReps[T]) HasNext() bool {
	if p.pending == nil && p.state != combDone {
		p.pending = p.fillNextWithReps()
	}
	//
	return p.pending != nil
}

// Next returns the next combination, and advance the enumerator.
//
//nolint:revive
func (p *CombinationsWithReps[T]) Next() []T {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	return p.take()
}

// ===================================================================
// Common
// ===================================================================

type combinations[T any] struct {
	source Enumerator[T]
	// Positions in buf making up the current combination
	comb []uint
	// Items pulled so far
	buf     []T
	pending []T
	state   int
}

// Drop releases the read ahead combination, any buffered items and the
// underlying enumerator.
func (p *combinations[T]) Drop() {
	array.DropAll(p.pending)
	p.pending = nil
	p.finish()
	Release[T](p.source)
}

func (p *combinations[T]) take() []T {
	next := p.pending
	p.pending = nil
	//
	return next
}

func (p *combinations[T]) finish() {
	array.DropAll(p.buf)
	p.buf = nil
	p.state = combDone
}

func (p *combinations[T]) fillNext() []T {
	var k = uint(len(p.comb))
	//
	switch p.state {
	case combDone:
		return nil
	case combFirst:
		items, err := NextChunk(p.source, k)
		//
		if err != nil {
			remainderOf[T](err).Drop()
			p.state = combDone
			//
			return nil
		}
		//
		p.buf = items
		p.state = combNormal
	case combNormal:
		// When the last position is at the end of the buffer, the next
		// combination requires another item.
		if p.comb[k-1] == uint(len(p.buf))-1 && p.source.HasNext() {
			p.buf = append(p.buf, p.source.Next())
		}
		// Find rightmost position not yet at its final value
		n := uint(len(p.buf))
		i := int(k) - 1
		//
		for i >= 0 && p.comb[i] == uint(i)+n-k {
			i--
		}
		//
		if i < 0 {
			p.finish()
			return nil
		}
		// Increment it, and reset everything to its right
		p.comb[i]++
		//
		for j := i + 1; j < int(k); j++ {
			p.comb[j] = p.comb[j-1] + 1
		}
	}
	//
	return p.clones()
}

func (p *combinations[T]) fillNextWithReps() []T {
	switch p.state {
	case combDone:
		return nil
	case combFirst:
		if !p.source.HasNext() {
			p.state = combDone
			return nil
		}
		//
		p.buf = append(p.buf, p.source.Next())
		p.state = combNormal
	case combNormal:
		if p.source.HasNext() {
			p.buf = append(p.buf, p.source.Next())
		}
		// Increment as a number in base n, least significant position last
		n := uint(len(p.buf))
		//
		for i := len(p.comb) - 1; ; i-- {
			if p.comb[i]++; p.comb[i] < n {
				break
			}
			//
			p.comb[i] = 0
			//
			if i == 0 {
				p.finish()
				return nil
			}
		}
	}
	//
	return p.clones()
}

// Assemble the current combination from clones of the buffered items.
func (p *combinations[T]) clones() []T {
	var i = 0
	//
	return array.CollectUnchecked(uint(len(p.comb)), func() (T, bool) {
		item := array.Clone(p.buf[p.comb[i]])
		i++
		//
		return item, true
	})
}
