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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ArrayIterator_01(t *testing.T) {
	checkEnumerator(t, ints(0, 4), []int{0, 1, 2, 3})
}

func Test_ArrayIterator_02(t *testing.T) {
	it := ints(0, 5)
	// Both ends
	assert.Equal(t, 0, it.Next())
	back, ok := it.NextBack()
	require.True(t, ok)
	assert.Equal(t, 4, back)
	assert.Equal(t, uint(3), it.Len())
	assert.Equal(t, "IntoIter([1 2 3])", it.String())
	assert.Equal(t, []int{1, 2, 3}, it.Collect())
	// Exhausted
	_, ok = it.NextBack()
	assert.False(t, ok)
}

func Test_ArrayIterator_03(t *testing.T) {
	it := ints(0, 4)
	it.Next()
	// Clones are independent
	clone := it.Clone()
	assert.Equal(t, []int{1, 2, 3}, clone.Collect())
	assert.Equal(t, uint(3), it.Count())
	assert.Equal(t, 1, it.Next())
}

func Test_ArrayIterator_04(t *testing.T) {
	it := ints(0, 6)
	index, ok := it.Find(func(i int) bool { return i == 3 })
	// Find consumes up to and including the match
	require.True(t, ok)
	assert.Equal(t, uint(3), index)
	assert.Equal(t, 5, it.Nth(1))
	assert.False(t, it.HasNext())
}

func Test_ArrayIterator_05(t *testing.T) {
	checkPanics(t, "iterator out-of-bounds", func() { ints(0, 2).Nth(2) })
}

func Test_ArrayIterator_06(t *testing.T) {
	var live int
	// Skipped items are dropped
	it := NewArrayIterator(mint(&live, 1, 2, 3, 4))
	third := it.Nth(2)
	assert.Equal(t, 3, third.value)
	assert.Equal(t, 2, live)
	// Remaining items are dropped
	it.Drop()
	assert.Equal(t, 1, live)
	assert.False(t, it.HasNext())
}

func Test_ArrayIterator_07(t *testing.T) {
	var live int
	//
	it := NewArrayIterator(mint(&live, 1, 2))
	clone := it.Clone()
	assert.Equal(t, 4, live)
	//
	Release[tracked](clone)
	Release[tracked](it)
	assert.Equal(t, 0, live)
}

func Test_AppendIterator_01(t *testing.T) {
	it := ints(0, 2).Append(ints(5, 7))
	//
	assert.Equal(t, uint(4), it.Count())
	checkEnumerator(t, it.Clone(), []int{0, 1, 5, 6})
	assert.Equal(t, []int{0, 1, 5, 6}, it.Collect())
}

func Test_AppendIterator_02(t *testing.T) {
	it := ints(0, 2).Append(ints(5, 7))
	index, ok := it.Find(func(i int) bool { return i == 6 })
	// Index spans both halves
	require.True(t, ok)
	assert.Equal(t, uint(3), index)
	//
	it = ints(0, 2).Append(ints(5, 7))
	assert.Equal(t, 5, it.Nth(2))
	assert.Equal(t, 6, it.Next())
}

func Test_ProjectIterator_01(t *testing.T) {
	it := NewProjectIterator[int, int](ints(0, 4), func(i int) int { return i * i })
	//
	assert.Equal(t, uint(4), it.Count())
	assert.Equal(t, 4, it.Nth(2))
	assert.Equal(t, []int{9}, it.Collect())
}

func Test_ProjectIterator_02(t *testing.T) {
	var live int
	// Source items are released once projected
	it := NewProjectIterator[tracked, int](NewArrayIterator(mint(&live, 1, 2, 3, 4)), func(item tracked) int {
		return item.value * 10
	})
	//
	assert.Equal(t, 10, it.Next())
	assert.Equal(t, 3, live)
	assert.Equal(t, 30, it.Nth(1))
	assert.Equal(t, 1, live)
	//
	Release[int](it)
	assert.Equal(t, 0, live)
}

func Test_ProjectIterator_03(t *testing.T) {
	var live int
	//
	it := NewProjectIterator[int, tracked](ints(0, 5), func(i int) tracked {
		return mint(&live, i)[0]
	})
	// Images examined by Find are not kept
	index, ok := it.Find(func(item tracked) bool { return item.value == 3 })
	require.True(t, ok)
	assert.Equal(t, uint(3), index)
	assert.Equal(t, 0, live)
	// Images returned belong to the caller
	item := it.Next()
	assert.Equal(t, 4, item.value)
	assert.Equal(t, 1, live)
	item.Drop()
	assert.Equal(t, 0, live)
}

func Test_ProjectIterator_04(t *testing.T) {
	var live int
	//
	it := NewProjectIterator[tracked, int](NewArrayIterator(mint(&live, 1, 2)), func(item tracked) int {
		if item.value == 1 {
			panic("bad item")
		}
		//
		return item.value
	})
	// The item is released even though projecting it failed
	checkPanics(t, "bad item", func() { it.Next() })
	assert.Equal(t, 1, live)
	//
	Release[int](it)
	assert.Equal(t, 0, live)
}
