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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Slot_Layout(t *testing.T) {
	checkLayout[bool](t)
	checkLayout[uint8](t)
	checkLayout[int64](t)
	checkLayout[string](t)
	checkLayout[[]int](t)
	checkLayout[*token](t)
	checkLayout[any](t)
	checkLayout[[3]uint16](t)
	checkLayout[struct {
		a uint8
		b uint64
	}](t)
}

func Test_Slot_Reinterpret_01(t *testing.T) {
	items := []int{1, 2, 3}
	slots := asSlots(items)
	// Same storage
	require.Len(t, slots, 3)
	assert.Equal(t, unsafe.Pointer(&items[0]), unsafe.Pointer(&slots[0]))
	assert.Equal(t, 2, slots[1].value)
	//
	back := assumeInit(slots)
	assert.Equal(t, []int{1, 2, 3}, back)
	assert.Equal(t, unsafe.Pointer(&items[0]), unsafe.Pointer(&back[0]))
}

func Test_Slot_Reinterpret_02(t *testing.T) {
	assert.Nil(t, asSlots[int](nil))
	assert.NotNil(t, asSlots([]int{}))
	assert.Empty(t, assumeInit(uninit[int](0)))
}

func Test_Slot_Reinterpret_03(t *testing.T) {
	var l ledger
	// Reinterpretation neither drops nor clones.
	tokens := l.mintAll(1, 2)
	slots := asSlots(tokens)
	back := assumeInit(slots)
	//
	assert.Len(t, l.drops, 2)
	assert.Equal(t, uint(0), l.total())
	assert.Same(t, tokens[1], back[1])
}

func Test_Slot_Take(t *testing.T) {
	var l ledger
	//
	buf := uninit[*token](3)
	buf[0].write(l.mint(1))
	buf[1].write(l.mint(2))
	// Taking leaves the slot zeroed
	tok := buf[0].take()
	assert.Equal(t, 1, tok.value)
	assert.Nil(t, buf[0].value)
	//
	dropRange(buf, 1, 2)
	assert.Equal(t, []uint{0, 1}, l.drops)
	assert.Nil(t, buf[1].value)
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkLayout[T any](t *testing.T) {
	var (
		s slot[T]
		v T
	)
	//
	assert.Equal(t, unsafe.Sizeof(v), unsafe.Sizeof(s))
	assert.Equal(t, unsafe.Alignof(v), unsafe.Alignof(s))
}
