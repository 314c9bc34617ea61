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

// Package array provides the primitives for building fixed-length arrays from
// a producer which yields values one at a time.  The number of values the
// producer can supply is not known in advance, and producing a value may
// panic.  On every exit path exactly the values which were collected are
// either handed back to the caller or released, never both and never twice.
package array

// Producer polls for the next value.  The boolean is false once the producer
// is exhausted, in which case the returned value is meaningless.  A producer
// is permitted to panic, and the panic is propagated unchanged.
type Producer[T any] func() (T, bool)

// Dropper is implemented by values which own something that must be released
// exactly once (e.g. a pooled buffer, or a reference count).  Whenever a
// collector or cursor discards a value it still owns, it calls Drop on it.
type Dropper interface {
	Drop()
}

// Cloner is implemented by values which must be deep-copied when a cursor is
// cloned.  Values which do not implement Cloner are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// Drop releases a single value, if it is a Dropper.
func Drop[T any](value T) {
	if d, ok := any(value).(Dropper); ok {
		d.Drop()
	}
}

// DropAll releases every value in the given slice, then zeroes the slice so
// that none of the released values can be observed again.
func DropAll[T any](values []T) {
	for i := range values {
		Drop(values[i])
	}
	//
	clear(values)
}

// Clone returns a copy of the given value, using Cloner if it is available.
func Clone[T any](value T) T {
	if c, ok := any(value).(Cloner[T]); ok {
		return c.Clone()
	}
	// Plain copy
	return value
}
