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

import "github.com/consensys/go-itermore/pkg/util/collection/array"

// Enumerator abstracts the process of iterating over a sequence of elements.
type Enumerator[T any] interface {
	// Check whether or not there are any items remaining to visit.
	HasNext() bool

	// Get the next item, and advanced the iterator.
	Next() T
}

// DoubleEnded is an enumerator which knows exactly how many items remain, and
// can also yield them from the back.
type DoubleEnded[T any] interface {
	Enumerator[T]

	// Len returns the exact number of items remaining.
	Len() uint

	// NextBack removes the last item remaining, or returns false if there are
	// none.
	NextBack() (T, bool)
}

// Release discards an enumerator along with any items it still owns.  If the
// enumerator is itself a Dropper, it is asked to drop its contents.  Otherwise,
// it is drained and each item dropped in turn.  Thus, it should not be used on
// an infinite enumerator which is not a Dropper.
func Release[T any](e Enumerator[T]) {
	if d, ok := e.(array.Dropper); ok {
		d.Drop()
		return
	}
	//
	for e.HasNext() {
		array.Drop(e.Next())
	}
}
