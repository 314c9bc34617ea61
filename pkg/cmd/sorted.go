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
	"io"
	"os"

	"github.com/consensys/go-itermore/pkg/util"
	"github.com/consensys/go-itermore/pkg/util/collection/iter"
	"github.com/spf13/cobra"
)

var sortedCmd = &cobra.Command{
	Use:   "sorted [flags] [tokens...]",
	Short: "Print tokens in sorted order.",
	Long: `Print tokens in ascending order, comparing either as strings or (with
	--numeric) as numbers.  Sorting is stable.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			asNumbers = GetFlag(cmd, "numeric")
			stats     = util.NewPerfStats()
		)
		//
		status := sortTokens(os.Stdout, tokens(args), asNumbers)
		stats.Log("Sorting tokens")
		exit(status)
	},
}

// Print the tokens in ascending order, returning the exit status.
func sortTokens(stdout io.Writer, source iter.Iterator[string], asNumbers bool) int {
	var items []string
	//
	if asNumbers {
		sorted := iter.SortedFunc[number](numeric(source), func(l number, r number) int {
			return cmp.Compare(l.value, r.value)
		})
		//
		for sorted.HasNext() {
			items = append(items, sorted.Next().text)
		}
	} else {
		items = iter.Sorted[string](source).Collect()
	}
	//
	out := newPrinter(stdout, uint(len(items)))
	out.Add(items...)
	out.Flush()
	//
	return 0
}

func init() {
	rootCmd.AddCommand(sortedCmd)
	sortedCmd.Flags().Bool("numeric", false, "compare tokens as numbers")
}
