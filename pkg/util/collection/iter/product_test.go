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

	"github.com/consensys/go-itermore/pkg/util"
	"github.com/stretchr/testify/assert"
)

func Test_CartesianProduct_01(t *testing.T) {
	checkProduct(t, []int{1}, []int{})
	checkProduct(t, []int{}, []int{4})
}

func Test_CartesianProduct_02(t *testing.T) {
	checkProduct(t, []int{1}, []int{4}, 1, 4)
	checkProduct(t, []int{1, 2}, []int{4}, 1, 4, 2, 4)
	checkProduct(t, []int{1, 2}, []int{4, 5}, 1, 4, 1, 5, 2, 4, 2, 5)
}

func Test_CartesianProduct_03(t *testing.T) {
	checkProduct(t, []int{1, 2}, []int{4, 5, 6}, 1, 4, 1, 5, 1, 6, 2, 4, 2, 5, 2, 6)
	checkProduct(t, []int{1, 2, 3}, []int{4, 5, 6}, 1, 4, 1, 5, 1, 6, 2, 4, 2, 5, 2, 6, 3, 4, 3, 5, 3, 6)
}

func Test_CartesianProduct_04(t *testing.T) {
	product := NewCartesianProduct[int, rune](ints(0, 3), runes("αβ"))
	//
	checkEnumerator(t, product, []util.Pair[int, rune]{
		util.NewPair(0, 'α'), util.NewPair(0, 'β'),
		util.NewPair(1, 'α'), util.NewPair(1, 'β'),
		util.NewPair(2, 'α'), util.NewPair(2, 'β'),
	})
}

func Test_CartesianProduct_05(t *testing.T) {
	var live int
	//
	left := NewArrayIterator(mint(&live, 1, 2))
	right := NewArrayIterator(mint(&live, 3, 4))
	product := NewCartesianProduct[tracked, tracked](left, right)
	// Read ahead one pair, then abandon
	pair := product.Next()
	assert.Equal(t, 1, pair.Left.value)
	assert.Equal(t, 3, pair.Right.value)
	assert.True(t, product.HasNext())
	pair.Left.Drop()
	pair.Right.Drop()
	//
	product.Drop()
	assert.Equal(t, 0, live)
}

// ===================================================================
// Test Helpers
// ===================================================================

// Check the product of two arrays, where the expected pairs are given flattened.
func checkProduct(t *testing.T, lhs []int, rhs []int, expected ...int) {
	t.Helper()
	//
	pairs := make([]util.Pair[int, int], 0)
	for i := 0; i < len(expected); i += 2 {
		pairs = append(pairs, util.NewPair(expected[i], expected[i+1]))
	}
	//
	checkEnumerator(t, NewCartesianProduct[int, int](NewArrayIterator(lhs), NewArrayIterator(rhs)), pairs)
}
