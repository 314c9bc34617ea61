package util

import (
	"fmt"
	"io"
	"strings"
)

// TablePrinter is useful for printing tables to the terminal.  Rows are added
// one at a time, and columns are aligned to the widest cell seen so far.
type TablePrinter struct {
	widths []uint
	rows   [][]string
}

// NewTablePrinter constructs a new (empty) table with a given number of
// columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), nil}
}

// Height returns the number of rows added so far.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// AddRow appends a row onto this table.  Rows with fewer cells than columns
// are padded, whilst extra cells are an error.
func (p *TablePrinter) AddRow(vals ...string) {
	if len(vals) > len(p.widths) {
		panic("incorrect number of columns")
	}
	//
	row := make([]string, len(p.widths))
	copy(row, vals)
	// Update column widths
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = max(p.widths[i], uint(len(row[i])))
	}
	// Done
	p.rows = append(p.rows, row)
}

// SetMaxWidth puts an upper bound on the width of any column.
func (p *TablePrinter) SetMaxWidth(m uint) {
	for i := 0; i < len(p.widths); i++ {
		p.widths[i] = min(p.widths[i], m)
	}
}

// Print the table to a given writer.
func (p *TablePrinter) Print(w io.Writer) {
	for _, row := range p.rows {
		var builder strings.Builder
		//
		for j, col := range row {
			jth := col
			jthWidth := p.widths[j]

			if uint(len(col)) > jthWidth {
				jth = col[0:jthWidth]
			}

			fmt.Fprintf(&builder, " %*s |", jthWidth, jth)
		}
		//
		fmt.Fprintln(w, strings.TrimSuffix(builder.String(), " |"))
	}
}
