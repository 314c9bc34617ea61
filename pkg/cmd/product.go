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
	"strings"

	"github.com/consensys/go-itermore/pkg/util"
	"github.com/consensys/go-itermore/pkg/util/collection/iter"
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product [flags] [tokens...]",
	Short: "Pair every token with every item of a given list.",
	Long:  `Pair every token with every item of a comma-separated list given by --with.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			with  = GetString(cmd, "with")
			stats = util.NewPerfStats()
		)
		//
		if with == "" {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		status := pairTokens(os.Stdout, tokens(args), strings.Split(with, ","))
		stats.Log("Pairing tokens")
		exit(status)
	},
}

// Print every pairing of a token with an item, returning the exit status.
func pairTokens(stdout io.Writer, source iter.Iterator[string], with []string) int {
	product := iter.NewCartesianProduct[string, string](source, iter.NewArrayIterator(with))
	defer product.Drop()
	//
	out := newPrinter(stdout, 2)
	//
	for product.HasNext() {
		pair := product.Next()
		out.Add(pair.Left, pair.Right)
	}
	//
	out.Flush()
	//
	return 0
}

func init() {
	rootCmd.AddCommand(productCmd)
	productCmd.Flags().String("with", "", "comma-separated list of items to pair with")
}
