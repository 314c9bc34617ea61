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
	goiter "iter"

	"github.com/consensys/go-itermore/pkg/util/collection/array"
)

// Poll turns an enumerator into a producer, as expected by the collection
// functions of the array package.  The enumerator is consumed by reference,
// hence anything not pulled remains in the enumerator.
func Poll[T any](e Enumerator[T]) array.Producer[T] {
	return func() (T, bool) {
		if e.HasNext() {
			return e.Next(), true
		}
		//
		var empty T
		//
		return empty, false
	}
}

// Seq turns an enumerator into a standard library sequence, suitable for use
// in a range loop.  Breaking out of the loop leaves the remaining items in the
// enumerator.
func Seq[T any](e Enumerator[T]) goiter.Seq[T] {
	return func(yield func(T) bool) {
		for e.HasNext() {
			if !yield(e.Next()) {
				return
			}
		}
	}
}

// PullEnumerator adapts a standard library sequence into an enumerator.  Since
// the sequence runs as a coroutine, Stop must be called if the enumerator is
// abandoned before being exhausted.
type PullEnumerator[T any] struct {
	next func() (T, bool)
	stop func()
	// Lookahead
	item    T
	pending bool
	done    bool
}

// FromSeq constructs an enumerator over a given sequence.
func FromSeq[T any](seq goiter.Seq[T]) *PullEnumerator[T] {
	next, stop := goiter.Pull(seq)
	//
	return &PullEnumerator[T]{next: next, stop: stop}
}

// HasNext checks whether or not there are any items remaining to visit.
//
//nolint:revive
func (p *PullEnumerator[T]) HasNext() bool {
	if !p.pending && !p.done {
		p.item, p.pending = p.next()
		p.done = !p.pending
	}
	//
	return p.pending
}

// Next returns the next item, and advance the enumerator.
//
//nolint:revive
func (p *PullEnumerator[T]) Next() T {
	if !p.HasNext() {
		panic("enumerator exhausted")
	}
	//
	var empty T
	//
	item := p.item
	p.item, p.pending = empty, false
	//
	return item
}

// Stop terminates the underlying sequence.  Any item which has been pulled
// but not yet returned is dropped.
func (p *PullEnumerator[T]) Stop() {
	if p.pending {
		var empty T
		//
		array.Drop(p.item)
		p.item, p.pending = empty, false
	}
	//
	p.done = true
	p.stop()
}

// Drop is a synonym for Stop, allowing the enumerator to be released like any
// other.
func (p *PullEnumerator[T]) Drop() {
	p.Stop()
}
