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
	"strings"
	"testing"

	"github.com/consensys/go-itermore/pkg/util/collection/array"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Sorted_01(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, Sorted[int](NewArrayIterator([]int{1, 3, 2})).Collect())
	assert.Empty(t, Sorted[int](ints(0, 0)).Collect())
}

func Test_Sorted_02(t *testing.T) {
	words := NewArrayIterator([]string{"bb", "a", "cc", "d", "ee"})
	// Stable by length
	sorted := SortedFunc[string](words, func(l, r string) int { return len(l) - len(r) })
	assert.Equal(t, "a d bb cc ee", strings.Join(sorted.Collect(), " "))
}

func Test_Sorted_03(t *testing.T) {
	sorted := Sorted[int](NewArrayIterator([]int{5, 1, 4}))
	// Double ended
	back, ok := sorted.NextBack()
	require.True(t, ok)
	assert.Equal(t, 5, back)
	assert.Equal(t, uint(2), sorted.Len())
}

func Test_CollectArray_01(t *testing.T) {
	items, err := CollectArray[int](ints(0, 0), 0)
	require.NoError(t, err)
	assert.Empty(t, items)
	//
	items, err = CollectArray[int](ints(0, 3), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, items)
}

func Test_CollectArray_02(t *testing.T) {
	it := ints(0, 3)
	// Reversed source
	e := FromSeq(func(yield func(int) bool) {
		for {
			back, ok := it.NextBack()
			if !ok || !yield(back) {
				return
			}
		}
	})
	defer e.Stop()
	//
	items, err := CollectArray[int](e, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0}, items)
}

func Test_CollectArray_03(t *testing.T) {
	_, err := CollectArray[int](ints(0, 2), 3)
	//
	var shortfall *array.ShortfallError[int]
	require.True(t, errors.As(err, &shortfall))
	assert.Equal(t, uint(2), shortfall.Obtained)
	assert.Equal(t, []int{0, 1}, shortfall.Remainder.AsSlice())
}

func Test_CollectArray_04(t *testing.T) {
	it := ints(0, 5)
	_, err := CollectArray[int](it, 3)
	// One surplus item pulled, and the rest untouched
	require.ErrorIs(t, err, array.ErrSurplus)
	assert.Equal(t, []int{4}, it.Collect())
}
