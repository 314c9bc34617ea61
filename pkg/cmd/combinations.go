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
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var combinationsCmd = &cobra.Command{
	Use:   "combinations [flags] K [tokens...]",
	Short: "Print every combination of K tokens.",
	Long: `Print every combination of K tokens, in lexicographic order of token
	position.  With --reps, tokens may be repeated in a combination.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			k     = sizeArg(cmd, args)
			reps  = GetFlag(cmd, "reps")
			stats = util.NewPerfStats()
		)
		//
		status := combineTokens(os.Stdout, os.Stderr, tokens(args[1:]), k, reps)
		stats.Log("Combining tokens")
		exit(status)
	},
}

// Print every combination of k tokens, returning the exit status.
func combineTokens(stdout, stderr io.Writer, source iter.Iterator[string], k uint, reps bool) int {
	var (
		combs iter.Enumerator[[]string]
		count uint
	)
	//
	if k == 0 {
		iter.Release[string](source)
		fmt.Fprintln(stderr, "combination size must be non-zero")
		//
		return 2
	} else if reps {
		combs = iter.NewCombinationsWithReps[string](source, k)
	} else {
		combs = iter.NewCombinations[string](source, k)
	}
	//
	defer iter.Release[[]string](combs)
	//
	out := newPrinter(stdout, k)
	//
	for ; combs.HasNext(); count++ {
		out.Add(cells(combs.Next())...)
	}
	//
	out.Flush()
	log.Debugf("printed %d combinations", count)
	//
	return 0
}

func init() {
	rootCmd.AddCommand(combinationsCmd)
	combinationsCmd.Flags().Bool("reps", false, "allow tokens to be repeated")
}
