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
	"math"
	"unsafe"
)

// slot is one storage location in a fixed buffer.  Whether or not it holds a
// live value is never recorded in the slot itself; that is determined solely
// by the liveness range of whoever owns the buffer.  A slot has exactly the
// size and alignment of T, which is what makes reinterpretation sound.
type slot[T any] struct {
	value T
}

// write stores a value into this slot, which must not currently be live.
func (p *slot[T]) write(value T) {
	p.value = value
}

// take moves the value out of this slot, leaving it zeroed.  Afterwards the
// slot must be considered dead by its owner.
func (p *slot[T]) take() T {
	value := p.value
	// Forget
	var empty T

	p.value = empty

	return value
}

// drop releases the value held in this live slot.
func (p *slot[T]) drop() {
	Drop(p.take())
}

// uninit allocates a buffer of n slots, none of which are live.  This panics
// if n slots could not be addressed, rather than leaving make to fail.
func uninit[T any](n uint) []slot[T] {
	var empty slot[T]
	//
	if size := uint(unsafe.Sizeof(empty)); n > math.MaxInt/max(size, 1) {
		panic("array length out of range")
	}
	//
	return make([]slot[T], n)
}

// dropRange releases every slot in the half-open range [lo,hi) of the buffer.
// If releasing one value panics, the rest are still released before the panic
// continues.
func dropRange[T any](buf []slot[T], lo, hi uint) {
	i := lo
	//
	defer func() {
		if i < hi {
			dropRange(buf, i+1, hi)
		}
	}()
	//
	for ; i < hi; i++ {
		buf[i].drop()
	}
}

// assumeInit reinterprets a buffer of slots as a slice of plain values,
// without copying.  This is only permitted once every slot in the buffer is
// live.  Ownership of the values passes to the returned slice, and the buffer
// must not be used again.
func assumeInit[T any](buf []slot[T]) []T {
	return reinterpret[slot[T], T](buf)
}

// asSlots reinterprets a slice of plain values as a buffer of slots, without
// copying.  Every resulting slot is live.  Ownership of the values passes to
// the returned buffer, and the original slice must not be used again.
func asSlots[T any](items []T) []slot[T] {
	return reinterpret[T, slot[T]](items)
}

// reinterpret views the backing array of a slice of A as a slice of B of the
// same length.  A and B must have identical size and alignment; this is not
// checked.  Neither Drop nor Clone is invoked on anything.
func reinterpret[A, B any](items []A) []B {
	if items == nil {
		return nil
	} else if len(items) == 0 {
		return make([]B, 0)
	}
	//
	ptr := (*B)(unsafe.Pointer(unsafe.SliceData(items)))
	//
	return unsafe.Slice(ptr, len(items))
}
