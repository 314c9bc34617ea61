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
package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/consensys/go-itermore/pkg/util/collection/iter"
	"github.com/stretchr/testify/assert"
)

func Test_Collect_01(t *testing.T) {
	checkCommand(t, "a\tb\tc\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return collectTokens(stdout, stderr, words("a b c d"), 3, false, false)
	})
}

func Test_Collect_02(t *testing.T) {
	checkCommand(t, "c\tb\ta\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return collectTokens(stdout, stderr, words("a b c d"), 3, true, false)
	})
}

func Test_Collect_03(t *testing.T) {
	stderr := "not enough elements (requested 5, obtained 4)\nremainder: [a b c d]\n"
	//
	checkCommand(t, "", stderr, 1, func(stdout, stderr *bytes.Buffer) int {
		return collectTokens(stdout, stderr, words("a b c d"), 5, false, false)
	})
}

func Test_Collect_04(t *testing.T) {
	stderr := "not enough elements (requested 5, obtained 4)\nremainder: [d c b a]\n"
	//
	checkCommand(t, "", stderr, 1, func(stdout, stderr *bytes.Buffer) int {
		return collectTokens(stdout, stderr, words("a b c d"), 5, true, false)
	})
}

func Test_Collect_05(t *testing.T) {
	checkCommand(t, "a\tb\tc\td\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return collectTokens(stdout, stderr, words("a b c d"), 4, false, true)
	})
	// One token too many
	var stdout, stderr bytes.Buffer
	//
	assert.Equal(t, 1, collectTokens(&stdout, &stderr, words("a b c d"), 3, false, true))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "too many elements")
}

func Test_Chunks_01(t *testing.T) {
	checkCommand(t, "a\tb\nc\td\n", "remainder: [e]\n", 0, func(stdout, stderr *bytes.Buffer) int {
		return chunkTokens(stdout, stderr, words("a b c d e"), 2, false)
	})
}

func Test_Chunks_02(t *testing.T) {
	// Taken from the end, with the odd token out discarded
	checkCommand(t, "c\td\na\tb\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return chunkTokens(stdout, stderr, words("a b c d e"), 2, true)
	})
}

func Test_Chunks_03(t *testing.T) {
	checkCommand(t, "", "remainder: [a b]\n", 0, func(stdout, stderr *bytes.Buffer) int {
		return chunkTokens(stdout, stderr, words("a b"), 3, false)
	})
}

func Test_Windows_01(t *testing.T) {
	checkCommand(t, "a\tb\nb\tc\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return windowTokens(stdout, stderr, words("a b c"), 2, false)
	})
}

func Test_Windows_02(t *testing.T) {
	checkCommand(t, "a\tb\nb\tc\nc\ta\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return windowTokens(stdout, stderr, words("a b c"), 2, true)
	})
}

func Test_Combinations_01(t *testing.T) {
	checkCommand(t, "a\tb\na\tc\nb\tc\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return combineTokens(stdout, stderr, words("a b c"), 2, false)
	})
}

func Test_Combinations_02(t *testing.T) {
	checkCommand(t, "a\ta\na\tb\nb\ta\nb\tb\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return combineTokens(stdout, stderr, words("a b"), 2, true)
	})
}

func Test_ZeroSize_01(t *testing.T) {
	checkCommand(t, "", "chunk size must be non-zero\n", 2, func(stdout, stderr *bytes.Buffer) int {
		return chunkTokens(stdout, stderr, words("a b"), 0, false)
	})
	checkCommand(t, "", "window size must be non-zero\n", 2, func(stdout, stderr *bytes.Buffer) int {
		return windowTokens(stdout, stderr, words("a b"), 0, true)
	})
	checkCommand(t, "", "combination size must be non-zero\n", 2, func(stdout, stderr *bytes.Buffer) int {
		return combineTokens(stdout, stderr, words("a b"), 0, false)
	})
}

func Test_Product_01(t *testing.T) {
	checkCommand(t, "x\t1\nx\t2\ny\t1\ny\t2\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return pairTokens(stdout, words("x y"), []string{"1", "2"})
	})
}

func Test_MinMax_01(t *testing.T) {
	checkCommand(t, "-2.5\t9\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return minmaxTokens(stdout, stderr, words("10 9 -2.5"), false)
	})
	checkCommand(t, "-2.5\t10\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return minmaxTokens(stdout, stderr, words("10 9 -2.5"), true)
	})
}

func Test_MinMax_02(t *testing.T) {
	checkCommand(t, "", "no tokens\n", 1, func(stdout, stderr *bytes.Buffer) int {
		return minmaxTokens(stdout, stderr, words(""), false)
	})
}

func Test_Sorted_01(t *testing.T) {
	checkCommand(t, "-2.5\t10\t9\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return sortTokens(stdout, words("10 9 -2.5"), false)
	})
	checkCommand(t, "-2.5\t9\t10\n", "", 0, func(stdout, stderr *bytes.Buffer) int {
		return sortTokens(stdout, words("10 9 -2.5"), true)
	})
}

// ===================================================================
// Test Helpers
// ===================================================================

func words(text string) iter.Iterator[string] {
	return iter.NewArrayIterator(strings.Fields(text))
}

// Run a command body against buffers, checking what it prints and the status
// it exits with.
func checkCommand(t *testing.T, stdout string, stderr string, status int, run func(*bytes.Buffer, *bytes.Buffer) int) {
	t.Helper()
	//
	var out, errOut bytes.Buffer
	//
	assert.Equal(t, status, run(&out, &errOut))
	assert.Equal(t, stdout, out.String())
	assert.Equal(t, stderr, errOut.String())
}
