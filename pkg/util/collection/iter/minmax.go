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
	"cmp"

	"github.com/consensys/go-itermore/pkg/util"
	"github.com/consensys/go-itermore/pkg/util/collection/array"
)

// MinMax returns the minimum and maximum items of an enumerator, or nothing if
// the enumerator is empty.  Items are compared in pairs, such that roughly 3n/2
// comparisons are required.  Where several items are equally minimal, the
// first is returned, and where several are equally maximal, the last is
// returned.  A single item is returned as both minimum and (a clone as)
// maximum.  All other items are dropped.
func MinMax[T cmp.Ordered](e Enumerator[T]) util.Option[util.Pair[T, T]] {
	return MinMaxFunc(e, cmp.Compare[T])
}

// MinMaxByKey returns the minimum and maximum items of an enumerator, as
// determined by a given key function.
func MinMaxByKey[T any, K cmp.Ordered](e Enumerator[T], key func(T) K) util.Option[util.Pair[T, T]] {
	return MinMaxFunc(e, func(l T, r T) int {
		return cmp.Compare(key(l), key(r))
	})
}

// MinMaxFunc returns the minimum and maximum items of an enumerator, as
// determined by a given comparison function.  This should return a negative
// number when l < r, a positive number when l > r and zero otherwise.
func MinMaxFunc[T any](e Enumerator[T], compare func(l T, r T) int) util.Option[util.Pair[T, T]] {
	if !e.HasNext() {
		return util.None[util.Pair[T, T]]()
	}
	//
	first := e.Next()
	//
	if !e.HasNext() {
		return util.Some(util.NewPair(array.Clone(first), first))
	}
	//
	minItem, maxItem := ordered(first, e.Next(), compare)
	//
	for e.HasNext() {
		a := e.Next()
		// Odd one out
		if !e.HasNext() {
			if compare(a, minItem) < 0 {
				array.Drop(minItem)
				minItem = a
			} else if compare(a, maxItem) >= 0 {
				array.Drop(maxItem)
				maxItem = a
			} else {
				array.Drop(a)
			}
			//
			break
		}
		//
		lo, hi := ordered(a, e.Next(), compare)
		// The smaller can only improve the minimum, and the larger the maximum.
		if compare(lo, minItem) < 0 {
			lo, minItem = minItem, lo
		}
		//
		if compare(hi, maxItem) >= 0 {
			hi, maxItem = maxItem, hi
		}
		//
		array.Drop(lo)
		array.Drop(hi)
	}
	//
	return util.Some(util.NewPair(minItem, maxItem))
}

// Order two items, swapping them only when the second is strictly smaller.
func ordered[T any](a T, b T, compare func(l T, r T) int) (T, T) {
	if compare(b, a) < 0 {
		return b, a
	}
	//
	return a, b
}
