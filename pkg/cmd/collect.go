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
	"io"
	"os"

	"github.com/consensys/go-itermore/pkg/util"
	"github.com/consensys/go-itermore/pkg/util/collection/array"
	"github.com/consensys/go-itermore/pkg/util/collection/iter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var collectCmd = &cobra.Command{
	Use:   "collect [flags] N [tokens...]",
	Short: "Collect the first N tokens into an array.",
	Long: `Collect the first N tokens into an array, failing if there are fewer
	than N tokens.  In that case, the tokens obtained are reported.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			n       = sizeArg(cmd, args)
			reverse = GetFlag(cmd, "reverse")
			exact   = GetFlag(cmd, "exact")
			stats   = util.NewPerfStats()
		)
		//
		status := collectTokens(os.Stdout, os.Stderr, tokens(args[1:]), n, reverse, exact)
		stats.Log("Collecting tokens")
		exit(status)
	},
}

// Collect n tokens into an array and print it, returning the exit status.  A
// shortfall (or, when exact, a surplus) is reported on stderr with status 1.
func collectTokens(stdout, stderr io.Writer, source iter.Iterator[string], n uint, reverse, exact bool) int {
	var (
		items []string
		err   error
	)
	//
	defer iter.Release[string](source)
	//
	switch {
	case exact:
		items, err = iter.CollectArray[string](source, n)
	case reverse:
		items, err = array.CollectReversed(n, iter.Poll[string](source))
	default:
		items, err = array.Collect(n, iter.Poll[string](source))
	}
	//
	if err != nil {
		return reportShortfall(stderr, err)
	}
	//
	log.Debugf("collected %d tokens, %d remaining", n, source.Count())
	out := newPrinter(stdout, n)
	out.Add(items...)
	out.Flush()
	//
	return 0
}

func init() {
	rootCmd.AddCommand(collectCmd)
	collectCmd.Flags().Bool("reverse", false, "fill the array from back to front")
	collectCmd.Flags().Bool("exact", false, "require exactly N tokens")
}
