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

	"github.com/pkg/errors"
)

// Collect polls the producer for n values and returns them as an array, in the
// order they were produced.  The producer is polled at most n times, so it can
// continue to be used afterwards.  If the producer is exhausted after k < n
// values, a *ShortfallError is returned whose remainder holds those k values
// in order.  If the producer panics, all values already obtained are dropped
// before the panic continues.  When n is zero, the producer is not polled.
//
// The whole array is allocated up front, hence n must be a length which can
// actually be allocated.  Lengths too large to address panic before the
// producer is polled, whilst merely very large lengths may exhaust memory.
// Callers taking n from untrusted input should bound it first.
func Collect[T any](n uint, next Producer[T]) ([]T, error) {
	var c = collector[T]{buf: uninit[T](n)}
	//
	return c.forwards(next)
}

// CollectReversed is similar to Collect, except that the buffer is filled from
// back to front.  Thus, the first value produced ends up in the last position.
// For example, collecting 3 values from a producer yielding 1,2,3 gives
// [3,2,1].  This is useful for taking values from the tail of a sequence
// which is being traversed backwards.  If the producer is exhausted after k < n
// values, the remainder holds those k values in buffer order (i.e. the most
// recently produced first).
func CollectReversed[T any](n uint, next Producer[T]) ([]T, error) {
	var c = collector[T]{buf: uninit[T](n)}
	//
	return c.backwards(next)
}

// CollectUnchecked is similar to Collect, but the caller guarantees that the
// producer yields at least n values (or panics).  If this guarantee is
// violated, the values obtained are dropped and CollectUnchecked panics.
// Callers that cannot uphold the guarantee should use Collect.
func CollectUnchecked[T any](n uint, next Producer[T]) []T {
	items, err := Collect(n, next)
	//
	if err != nil {
		var shortfall = err.(*ShortfallError[T])
		//
		shortfall.Remainder.Drop()
		//
		panic(fmt.Sprintf("producer violated contract: %s", err.Error()))
	}
	//
	return items
}

// CollectSeq takes ownership of a sequence and collects its first n values.
// Any values beyond the first n are never produced.  The sequence is always
// stopped before returning, including when it panics.
func CollectSeq[T any](n uint, seq iter.Seq[T]) ([]T, error) {
	next, stop := iter.Pull(seq)
	defer stop()
	//
	return Collect(n, next)
}

// CollectExact collects exactly n values from the producer.  Should the
// producer be exhausted early, a *ShortfallError is returned as for Collect.
// Should it yield more than n values, the array and the surplus value are both
// dropped and ErrSurplus is returned.  At most n+1 values are polled.
func CollectExact[T any](n uint, next Producer[T]) ([]T, error) {
	items, err := Collect(n, next)
	//
	if err != nil {
		return nil, err
	}
	// Release the array should the final poll panic.
	done := false
	//
	defer func() {
		if !done {
			DropAll(items)
		}
	}()
	//
	if surplus, ok := next(); ok {
		done = true
		//
		Drop(surplus)
		DropAll(items)
		//
		return nil, errors.Wrapf(ErrSurplus, "expected exactly %d", n)
	}
	//
	done = true

	return items, nil
}

// ============================================================================
// Collector
// ============================================================================

// collector owns a fixed buffer during construction, along with the half-open
// range [lo,hi) of slots which have been populated so far.  When collecting
// forwards lo stays at 0 and hi grows.  When collecting backwards hi stays at
// len(buf) and lo shrinks.
type collector[T any] struct {
	buf []slot[T]
	lo  uint
	hi  uint
	// Set once ownership of the buffer has been handed off, either to the
	// caller or to a remainder cursor.
	disarmed bool
}

// guard releases whatever is populated, unless the collector was disarmed.  It
// must be deferred on entry so that it runs when a producer panics.  Since it
// reads lo and hi at the point of unwinding, it always sees the current
// populated range.
func (p *collector[T]) guard() {
	if !p.disarmed {
		lo, hi := p.lo, p.hi
		p.lo, p.hi = 0, 0
		//
		dropRange(p.buf, lo, hi)
	}
}

func (p *collector[T]) forwards(next Producer[T]) ([]T, error) {
	var n = uint(len(p.buf))
	//
	defer p.guard()
	//
	for p.hi < n {
		item, ok := next()
		//
		if !ok {
			return nil, p.shortfall()
		}
		// Write the slot before extending the range, so that the range never
		// covers an unwritten slot.
		p.buf[p.hi].write(item)
		p.hi++
	}
	//
	return p.finish(), nil
}

func (p *collector[T]) backwards(next Producer[T]) ([]T, error) {
	var n = uint(len(p.buf))
	//
	p.lo, p.hi = n, n
	//
	defer p.guard()
	//
	for p.lo > 0 {
		item, ok := next()
		//
		if !ok {
			return nil, p.shortfall()
		}
		//
		p.buf[p.lo-1].write(item)
		p.lo--
	}
	//
	return p.finish(), nil
}

// finish hands the (now fully populated) buffer to the caller.
func (p *collector[T]) finish() []T {
	p.disarmed = true
	//
	return assumeInit(p.buf)
}

// shortfall hands the populated range over to a fresh cursor.
func (p *collector[T]) shortfall() error {
	p.disarmed = true
	//
	remainder := &IntoIter[T]{p.buf, p.lo, p.hi}
	//
	return newShortfall(uint(len(p.buf)), remainder)
}
