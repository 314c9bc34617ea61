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
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-itermore/pkg/util"
	"github.com/consensys/go-itermore/pkg/util/collection/iter"
	"github.com/spf13/cobra"
)

var minmaxCmd = &cobra.Command{
	Use:   "minmax [flags] [tokens...]",
	Short: "Print the smallest and largest tokens.",
	Long: `Print the smallest and largest tokens, comparing either as strings or
	(with --numeric) as numbers.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asNumbers = GetFlag(cmd, "numeric")
			stats     = util.NewPerfStats()
		)
		//
		status := minmaxTokens(os.Stdout, os.Stderr, tokens(args), asNumbers)
		stats.Log("Comparing tokens")
		exit(status)
	},
}

// Print the smallest and largest tokens, returning the exit status.  Having no
// tokens at all is an error.
func minmaxTokens(stdout, stderr io.Writer, source iter.Iterator[string], asNumbers bool) int {
	var result util.Option[util.Pair[string, string]]
	//
	if asNumbers {
		numbers := iter.MinMaxFunc[number](numeric(source), func(l number, r number) int {
			return cmp.Compare(l.value, r.value)
		})
		//
		if numbers.HasValue() {
			pair := numbers.Unwrap()
			result = util.Some(util.NewPair(pair.Left.text, pair.Right.text))
		}
	} else {
		result = iter.MinMax[string](source)
	}
	//
	if result.IsEmpty() {
		fmt.Fprintln(stderr, "no tokens")
		return 1
	}
	//
	out := newPrinter(stdout, 2)
	out.Add(result.Unwrap().Left, result.Unwrap().Right)
	out.Flush()
	//
	return 0
}

func init() {
	rootCmd.AddCommand(minmaxCmd)
	minmaxCmd.Flags().Bool("numeric", false, "compare tokens as numbers")
}
