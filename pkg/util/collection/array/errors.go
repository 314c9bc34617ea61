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
	"fmt"

	"github.com/pkg/errors"
)

// ErrShortfall signals that a producer was exhausted before the requested
// number of values was obtained.  This is an expected outcome rather than a
// fault.  Use errors.As with a *ShortfallError to recover the values which
// were obtained.
var ErrShortfall = errors.New("not enough elements")

// ErrSurplus signals that a producer yielded more values than were requested
// by an exact collection.
var ErrSurplus = errors.New("too many elements")

// ShortfallError is returned when a producer is exhausted before n values
// were obtained.  It carries the values which were obtained, in a cursor, so
// that ownership of them is not silently lost.  The caller is responsible for
// either draining the remainder or calling Drop on it.
type ShortfallError[T any] struct {
	// Requested is the number of values which were asked for.
	Requested uint
	// Obtained is the number of values the producer yielded before it was
	// exhausted.
	Obtained uint
	// Remainder holds the values which were obtained.
	Remainder *IntoIter[T]
}

func (p *ShortfallError[T]) Error() string {
	return fmt.Sprintf("%s (requested %d, obtained %d)", ErrShortfall.Error(), p.Requested, p.Obtained)
}

// Unwrap allows errors.Is(err, ErrShortfall) to identify a shortfall.
func (p *ShortfallError[T]) Unwrap() error {
	return ErrShortfall
}

func newShortfall[T any](requested uint, remainder *IntoIter[T]) *ShortfallError[T] {
	return &ShortfallError[T]{requested, remainder.Len(), remainder}
}
