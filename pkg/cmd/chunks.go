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
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-itermore/pkg/util"
	"github.com/consensys/go-itermore/pkg/util/collection/iter"
	"github.com/spf13/cobra"
)

var chunksCmd = &cobra.Command{
	Use:   "chunks [flags] N [tokens...]",
	Short: "Split tokens into non-overlapping arrays of N tokens.",
	Long: `Split tokens into non-overlapping arrays of N tokens.  Any tokens left
	over are reported on stderr.  With --back, arrays are taken from the end
	and the tokens left over are discarded.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			n     = sizeArg(cmd, args)
			back  = GetFlag(cmd, "back")
			stats = util.NewPerfStats()
		)
		//
		status := chunkTokens(os.Stdout, os.Stderr, tokens(args[1:]), n, back)
		stats.Log("Chunking tokens")
		exit(status)
	},
}

// Print the chunks of n tokens, returning the exit status.  Leftover tokens are
// reported on stderr, but are not an error.
func chunkTokens(stdout, stderr io.Writer, source iter.Iterator[string], n uint, back bool) int {
	if n == 0 {
		iter.Release[string](source)
		fmt.Fprintln(stderr, "chunk size must be non-zero")
		//
		return 2
	}
	// Double ended, so --back is supported
	chunks := iter.NewChunks[string](iter.NewArrayIterator(source.Collect()), n)
	defer chunks.Drop()
	//
	out := newPrinter(stdout, n)
	//
	for back {
		chunk, ok := chunks.NextBack()
		if !ok {
			break
		}
		//
		out.Add(cells(chunk)...)
	}
	//
	for chunks.HasNext() {
		out.Add(cells(chunks.Next())...)
	}
	//
	out.Flush()
	//
	if rem := chunks.Remainder(); rem != nil && rem.Len() > 0 {
		fmt.Fprintf(stderr, "remainder: %s\n", formatArray(rem.AsSlice(), true))
	}
	//
	return 0
}

func init() {
	rootCmd.AddCommand(chunksCmd)
	chunksCmd.Flags().Bool("back", false, "take chunks from the end")
}
