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
	"github.com/eapache/queue"
)

// Windows is an enumerator over overlapping windows of n items at a time,
// taken from some underlying enumerator.  Each window returned is a fresh
// array of clones, whilst the originals are retained for the next window.  If
// the underlying enumerator holds fewer than n items, there are no windows.
type Windows[T any] struct {
	source Enumerator[T]
	n      uint
	// Most recent n items, oldest first.
	ring *queue.Queue
	// Window read ahead by HasNext
	pending []T
	started bool
	done    bool
}

// NewWindows constructs an enumerator over windows of size n.  This panics if
// n is zero.
func NewWindows[T any](source Enumerator[T], n uint) *Windows[T] {
	if n == 0 {
		panic("window size must be non-zero")
	}
	//
	return &Windows[T]{source: source, n: n, ring: queue.New()}
}

// HasNext checks whether or not there are any windows remaining to visit.
//
//nolint:revive
func (p *Windows[T]) HasNext() bool {
	if p.pending == nil && !p.done {
		p.advance()
	}
	//
	return p.pending != nil
}

// Next returns the next window, and advance the enumerator.
//
//nolint:revive
func (p *Windows[T]) Next() []T {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	window := p.pending
	p.pending = nil
	//
	return window
}

// Nth skips (and drops) n windows, returning the one which follows (if any).
func (p *Windows[T]) Nth(n uint) ([]T, bool) {
	for i := uint(0); p.HasNext(); i++ {
		window := p.Next()
		//
		if i == n {
			return window, true
		}
		//
		array.DropAll(window)
	}
	//
	return nil, false
}

// Count returns the number of windows left, provided the underlying enumerator
// can count its items without being consumed.  Otherwise, the windows are
// drained to count them.
func (p *Windows[T]) Count() uint {
	c, ok := p.source.(interface{ Count() uint })
	//
	if !ok {
		count := uint(0)
		//
		for p.HasNext() {
			array.DropAll(p.Next())
			count++
		}
		//
		return count
	}
	//
	count := uint(0)
	//
	if p.pending != nil {
		count++
	}
	//
	if p.done {
		return count
	} else if p.started {
		// Every remaining item completes exactly one window
		return count + c.Count()
	} else if m := c.Count(); m >= p.n {
		return count + m - (p.n - 1)
	}
	//
	return count
}

// Drop releases the read ahead window, the retained items and the underlying
// enumerator.
func (p *Windows[T]) Drop() {
	array.DropAll(p.pending)
	p.pending = nil
	p.done = true
	//
	for p.ring.Length() > 0 {
		item, _ := p.ring.Remove().(T)
		array.Drop(item)
	}
	//
	Release[T](p.source)
}

func (p *Windows[T]) advance() {
	if !p.started {
		p.started = true
		// Fill the ring with the first window
		items, err := NextChunk(p.source, p.n)
		//
		if err != nil {
			remainderOf[T](err).Drop()
			p.done = true
			//
			return
		}
		//
		for _, item := range items {
			p.ring.Add(item)
		}
	} else if p.source.HasNext() {
		item := p.source.Next()
		// Slide the window along by one
		oldest, _ := p.ring.Remove().(T)
		array.Drop(oldest)
		p.ring.Add(item)
	} else {
		p.done = true
		//
		return
	}
	//
	p.pending = p.window()
}

// Clone the items currently held in the ring.
func (p *Windows[T]) window() []T {
	var i = 0
	//
	return array.CollectUnchecked(p.n, func() (T, bool) {
		item, _ := p.ring.Get(i).(T)
		i++
		//
		return array.Clone(item), true
	})
}

// ===================================================================
// Circular Windows
// ===================================================================

// CircularWindows is an enumerator over overlapping windows of n items at a
// time which wraps around the end of the underlying iterator.  Thus, there is
// exactly one window starting at each item.
type CircularWindows[T any] struct {
	windows *Windows[T]
	len     uint
}

// NewCircularWindows constructs an enumerator over circular windows of size n.
// This panics if n is zero.
func NewCircularWindows[T any](it Iterator[T], n uint) *CircularWindows[T] {
	count := it.Count()
	//
	return &CircularWindows[T]{NewWindows[T](newCycleEnumerator(it), n), count}
}

// HasNext checks whether or not there are any windows remaining to visit.
//
//nolint:revive
func (p *CircularWindows[T]) HasNext() bool {
	return p.len > 0 && p.windows.HasNext()
}

// Next returns the next window, and advance the enumerator.
//
//nolint:revive
func (p *CircularWindows[T]) Next() []T {
	if p.len == 0 {
		panic("enumerator exhausted")
	}
	//
	p.len--
	//
	return p.windows.Next()
}

// Count returns the number of windows left.
func (p *CircularWindows[T]) Count() uint {
	return p.len
}

// Drop releases all items held.
func (p *CircularWindows[T]) Drop() {
	p.len = 0
	p.windows.Drop()
}

// cycleEnumerator repeats an iterator endlessly, by cloning it afresh each
// time the current copy is exhausted.  An empty iterator gives an empty cycle.
type cycleEnumerator[T any] struct {
	origin Iterator[T]
	curr   Iterator[T]
}

func newCycleEnumerator[T any](it Iterator[T]) *cycleEnumerator[T] {
	return &cycleEnumerator[T]{it.Clone(), it}
}

func (p *cycleEnumerator[T]) HasNext() bool {
	if p.curr.HasNext() {
		return true
	} else if p.origin.Count() == 0 {
		return false
	}
	//
	Release[T](p.curr)
	p.curr = p.origin.Clone()
	//
	return true
}

func (p *cycleEnumerator[T]) Next() T {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	return p.curr.Next()
}

func (p *cycleEnumerator[T]) Drop() {
	Release[T](p.curr)
	Release[T](p.origin)
}
