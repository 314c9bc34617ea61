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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/consensys/go-itermore/pkg/util"
	"github.com/consensys/go-itermore/pkg/util/collection/array"
	"github.com/consensys/go-itermore/pkg/util/collection/iter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse the leading size argument of a command (e.g. the chunk size), or exit
// with a usage message if there is none.
func sizeArg(cmd *cobra.Command, args []string) uint {
	if len(args) < 1 {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	}
	//
	n, err := parseSize(args[0])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return n
}

// Parse a size argument, which must fit within maxSize.
func parseSize(arg string) (uint, error) {
	n, err := strconv.ParseUint(arg, 10, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid size %q", arg)
	} else if n > maxSize {
		return 0, errors.Errorf("invalid size %q (exceeds %d)", arg, maxSize)
	}
	//
	return uint(n), nil
}

// Upper bound on any size argument.  Arrays are allocated in full before any
// token is read, so the size must be one which can actually be allocated.
const maxSize = 1 << 20

// Construct an iterator over the tokens of a command.  These are the arguments
// given, followed by any tokens read from stdin when it is not a terminal.
func tokens(args []string) iter.Iterator[string] {
	var items = iter.NewArrayIterator(args)
	//
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return items
	}
	//
	rest, err := readTokens(os.Stdin)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	log.Debugf("read %d tokens from stdin", len(rest))
	//
	return items.Append(iter.NewArrayIterator(rest))
}

// Read whitespace-separated tokens from a given reader.
func readTokens(reader io.Reader) ([]string, error) {
	var (
		scanner = bufio.NewScanner(reader)
		items   []string
	)
	//
	scanner.Split(bufio.ScanWords)
	//
	for scanner.Scan() {
		items = append(items, scanner.Text())
	}
	//
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}
	//
	return items, nil
}

// Printer writes arrays to a given writer, one per line.  When the writer is a
// terminal, arrays are aligned as a table whilst, otherwise, they are
// tab-separated (e.g. for consumption by cut).
type printer struct {
	out      io.Writer
	table    *util.TablePrinter
	terminal bool
}

func newPrinter(out io.Writer, width uint) *printer {
	var terminal bool
	//
	if file, ok := out.(*os.File); ok {
		terminal = term.IsTerminal(int(file.Fd()))
	}
	//
	return &printer{out, util.NewTablePrinter(width), terminal}
}

// Add an array to be printed.
func (p *printer) Add(cells ...string) {
	if p.terminal {
		p.table.AddRow(cells...)
	} else {
		fmt.Fprintln(p.out, formatArray(cells, false))
	}
}

// Flush any arrays held back for alignment.
func (p *printer) Flush() {
	if p.terminal {
		p.table.SetMaxWidth(maxCellWidth)
		p.table.Print(p.out)
	}
}

// Upper bound on the width of any column printed to a terminal.
const maxCellWidth = 32

// Convert an array of items into the cells of a table row.
func cells[T any](items []T) []string {
	strs := make([]string, len(items))
	for i, item := range items {
		strs[i] = fmt.Sprintf("%v", item)
	}
	//
	return strs
}

func formatArray[T any](items []T, bracketed bool) string {
	var builder strings.Builder
	//
	if bracketed {
		builder.WriteString("[")
	}
	//
	for i, item := range items {
		if i != 0 && bracketed {
			builder.WriteString(" ")
		} else if i != 0 {
			builder.WriteString("\t")
		}
		//
		fmt.Fprintf(&builder, "%v", item)
	}
	//
	if bracketed {
		builder.WriteString("]")
	}
	//
	return builder.String()
}

// Report a collection error, including the items obtained in the event of a
// shortfall, and return the corresponding exit status.
func reportShortfall(stderr io.Writer, err error) int {
	fmt.Fprintln(stderr, err)
	//
	var shortfall *array.ShortfallError[string]
	//
	if errors.As(err, &shortfall) {
		fmt.Fprintf(stderr, "remainder: %s\n", formatArray(shortfall.Remainder.AsSlice(), true))
		shortfall.Remainder.Drop()
	}
	//
	return 1
}

// Exit with a given status, unless it signals success.
func exit(status int) {
	if status != 0 {
		os.Exit(status)
	}
}

// Parse tokens as numbers, or exit if any token is not a number.
func numeric(tokens iter.Iterator[string]) iter.Iterator[number] {
	return iter.NewProjectIterator[string, number](tokens, func(token string) number {
		value, err := strconv.ParseFloat(token, 64)
		if err != nil {
			fmt.Println(errors.Wrapf(err, "invalid number %q", token))
			os.Exit(2)
		}
		//
		return number{token, value}
	})
}

// A number as written, along with its value.
type number struct {
	text  string
	value float64
}

func (p number) String() string {
	return p.text
}
