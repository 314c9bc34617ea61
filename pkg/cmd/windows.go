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

var windowsCmd = &cobra.Command{
	Use:   "windows [flags] N [tokens...]",
	Short: "Print every overlapping window of N tokens.",
	Long: `Print every overlapping window of N tokens.  With --circular, windows
	wrap around the end such that there is one window per token.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			n        = sizeArg(cmd, args)
			circular = GetFlag(cmd, "circular")
			stats    = util.NewPerfStats()
		)
		//
		status := windowTokens(os.Stdout, os.Stderr, tokens(args[1:]), n, circular)
		stats.Log("Windowing tokens")
		exit(status)
	},
}

// Print every window of n tokens, returning the exit status.
func windowTokens(stdout, stderr io.Writer, source iter.Iterator[string], n uint, circular bool) int {
	var windows iter.Enumerator[[]string]
	//
	if n == 0 {
		iter.Release[string](source)
		fmt.Fprintln(stderr, "window size must be non-zero")
		//
		return 2
	} else if circular {
		windows = iter.NewCircularWindows[string](source, n)
	} else {
		windows = iter.NewWindows[string](source, n)
	}
	//
	defer iter.Release[[]string](windows)
	//
	out := newPrinter(stdout, n)
	//
	for windows.HasNext() {
		out.Add(cells(windows.Next())...)
	}
	//
	out.Flush()
	//
	return 0
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().Bool("circular", false, "wrap windows around the end")
}
