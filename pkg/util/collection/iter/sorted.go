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
	"slices"

	"github.com/consensys/go-itermore/pkg/util/collection/array"
)

// Sorted drains an enumerator, returning an iterator over its items in
// ascending order.
func Sorted[T cmp.Ordered](e Enumerator[T]) *ArrayIterator[T] {
	items := Collect[T](e)
	slices.Sort(items)
	//
	return NewArrayIterator(items)
}

// SortedFunc drains an enumerator, returning an iterator over its items as
// ordered by a given comparison function.  The sort is stable.
func SortedFunc[T any](e Enumerator[T], compare func(l T, r T) int) *ArrayIterator[T] {
	items := Collect[T](e)
	slices.SortStableFunc(items, compare)
	//
	return NewArrayIterator(items)
}

// CollectArray pulls exactly n items from an enumerator.  If there are fewer
// than n items, the error is an *array.ShortfallError holding the items
// obtained.  If there are more, the items obtained are dropped (as is the one
// extra item pulled) and the error matches array.ErrSurplus.
func CollectArray[T any](e Enumerator[T], n uint) ([]T, error) {
	return array.CollectExact(n, Poll(e))
}
