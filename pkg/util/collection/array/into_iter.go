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
package array

import (
	"fmt"
	"iter"
)

// IntoIter is a by-value iterator over a (possibly partially populated) fixed
// buffer.  It owns the buffer, and the half-open range [lo,hi) identifies
// exactly those slots which hold values not yet yielded.  Values are moved out
// of the buffer as they are yielded.  Calling Drop releases only those values
// which remain.
type IntoIter[T any] struct {
	buf []slot[T]
	// Invariant: lo <= hi <= len(buf)
	lo uint
	hi uint
}

// NewIntoIter constructs a cursor over a complete array.  Ownership of the
// array passes to the cursor, which reuses its storage without copying.
func NewIntoIter[T any](items []T) *IntoIter[T] {
	return &IntoIter[T]{asSlots(items), 0, uint(len(items))}
}

// NewIntoIterUnchecked constructs a cursor over a partially populated array,
// where only items[lo:hi] are owned by the cursor.  The caller must ensure
// lo <= hi <= len(items).  Items outside the range are never read, yielded or
// dropped by the cursor.
func NewIntoIterUnchecked[T any](items []T, lo, hi uint) *IntoIter[T] {
	return &IntoIter[T]{asSlots(items), lo, hi}
}

// HasNext checks whether or not there are any values remaining to visit.
func (p *IntoIter[T]) HasNext() bool {
	return p.lo < p.hi
}

// Next moves the next value out of the cursor.  This panics if the cursor is
// exhausted, and HasNext should be consulted first.
func (p *IntoIter[T]) Next() T {
	if p.lo >= p.hi {
		panic("cursor exhausted")
	}
	//
	value := p.buf[p.lo].take()
	p.lo++

	return value
}

// Poll moves the next value out of the cursor, or returns false if it is
// exhausted.  Once exhausted, Poll continues to return false.
func (p *IntoIter[T]) Poll() (T, bool) {
	if p.lo < p.hi {
		return p.Next(), true
	}
	//
	var empty T

	return empty, false
}

// NextBack moves the last remaining value out of the cursor, or returns false
// if it is exhausted.
func (p *IntoIter[T]) NextBack() (T, bool) {
	if p.lo < p.hi {
		p.hi--
		return p.buf[p.hi].take(), true
	}
	//
	var empty T

	return empty, false
}

// Len returns the exact number of values remaining.
func (p *IntoIter[T]) Len() uint {
	return p.hi - p.lo
}

// Count returns the exact number of values remaining.  This does not modify
// the cursor.
func (p *IntoIter[T]) Count() uint {
	return p.Len()
}

// AsSlice returns a view of the values remaining.  The view shares storage
// with the cursor and is only valid until the cursor is next advanced or
// dropped.  It must not be modified; use AsMutSlice for that.
func (p *IntoIter[T]) AsSlice() []T {
	return p.view()
}

// AsMutSlice returns a view of the values remaining through which they may be
// modified in place.  Modifications are observed by subsequent calls to Next.
// The view is only valid until the cursor is next advanced or dropped.
func (p *IntoIter[T]) AsMutSlice() []T {
	return p.view()
}

func (p *IntoIter[T]) view() []T {
	// Clip capacity so appending to the view cannot overwrite dead slots.
	live := p.buf[p.lo:p.hi:p.hi]
	//
	return assumeInit(live)
}

// Clone creates an independent cursor over a fresh buffer holding clones of
// the values remaining.  Advancing either cursor does not affect the other.
// Should cloning a value panic, those values already cloned are dropped before
// the panic continues.
func (p *IntoIter[T]) Clone() *IntoIter[T] {
	n := p.Len()
	clone := &IntoIter[T]{uninit[T](uint(len(p.buf))), 0, 0}
	// Guard against a panicking Clone, which would leave the new buffer
	// partially populated.
	done := false

	defer func() {
		if !done {
			clone.Drop()
		}
	}()
	//
	for i := range n {
		clone.buf[i].write(Clone(p.buf[p.lo+i].value))
		clone.hi++
	}
	//
	done = true

	return clone
}

// Drop releases every value remaining in the cursor.  Afterwards the cursor is
// exhausted.  Dropping an exhausted cursor has no effect.
func (p *IntoIter[T]) Drop() {
	lo, hi := p.lo, p.hi
	// Mark everything dead first, so that a panicking Drop cannot lead to a
	// value being released twice.
	p.lo = hi
	//
	dropRange(p.buf, lo, hi)
}

// All returns a sequence which moves values out of the cursor as it is
// ranged over.  Stopping early leaves the remaining values in the cursor.
func (p *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p.lo < p.hi {
			if !yield(p.Next()) {
				return
			}
		}
	}
}

// String prints only the values remaining.
func (p *IntoIter[T]) String() string {
	return fmt.Sprintf("IntoIter(%v)", p.AsSlice())
}
