// Package table renders fixed-width plain-text tables.
package table

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes rows under the given column headers. Every cell is padded to
// its column width and followed by a single space; the second line underlines
// each header with dashes. Column width is the larger of the header and its
// widest cell.
func Fprint(w io.Writer, columns []string, rows [][]string) {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = len(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := make([]string, len(columns))
	for i, c := range columns {
		line[i] = pad(c, widths[i])
	}
	fmt.Fprintln(w, strings.Join(line, ""))

	for i, width := range widths {
		line[i] = pad(strings.Repeat("-", width), width)
	}
	fmt.Fprintln(w, strings.Join(line, ""))

	for _, row := range rows {
		for i, width := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			line[i] = pad(cell, width)
		}
		fmt.Fprintln(w, strings.Join(line, ""))
	}
}

func pad(s string, width int) string {
	return s + strings.Repeat(" ", width-len(s)) + " "
}
