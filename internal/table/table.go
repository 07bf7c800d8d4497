// Package table renders rows of text as a bordered ASCII table.
package table

import (
	"bufio"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Alignment controls how a cell is padded to its column width.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Table accumulates a header and rows and renders them to a writer.
type Table struct {
	writer      io.Writer
	header      []string
	rows        [][]string
	columnAlign []Alignment
	headerAlign []Alignment
}

// NewTable returns an empty table that renders to w.
func NewTable(w io.Writer) *Table {
	return &Table{writer: w}
}

// WithHeader sets the header row.
func (t *Table) WithHeader(header []string) *Table {
	t.header = header
	return t
}

// WithColumnAlignment sets the alignment of body cells, per column.
func (t *Table) WithColumnAlignment(align []Alignment) *Table {
	t.columnAlign = align
	return t
}

// WithHeaderAlignment sets the alignment of header cells, per column.
func (t *Table) WithHeaderAlignment(align []Alignment) *Table {
	t.headerAlign = align
	return t
}

// WithRows appends the given rows.
func (t *Table) WithRows(rows [][]string) *Table {
	t.rows = append(t.rows, rows...)
	return t
}

// Append appends one row.
func (t *Table) Append(row []string) *Table {
	t.rows = append(t.rows, row)
	return t
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripAnsi(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// width is the number of visible characters in s. Color escape sequences
// take no space on a terminal.
func width(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

func (t *Table) widths() []int {
	columns := len(t.header)
	for _, row := range t.rows {
		if len(row) > columns {
			columns = len(row)
		}
	}
	widths := make([]int, columns)
	measure := func(row []string) {
		for i, cell := range row {
			if w := width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(t.header)
	for _, row := range t.rows {
		measure(row)
	}
	return widths
}

func pad(s string, w int, align Alignment) string {
	gap := w - width(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

func alignmentAt(align []Alignment, i int) Alignment {
	if i < len(align) {
		return align[i]
	}
	return AlignLeft
}

// Render writes the table.
func (t *Table) Render() error {
	widths := t.widths()
	bw := bufio.NewWriter(t.writer)

	var border strings.Builder
	border.WriteString("+")
	for _, w := range widths {
		border.WriteString(strings.Repeat("-", w+2))
		border.WriteString("+")
	}
	border.WriteString("\n")

	writeRow := func(row []string, align []Alignment) {
		bw.WriteString("|")
		for i, w := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			bw.WriteString(" ")
			bw.WriteString(pad(cell, w, alignmentAt(align, i)))
			bw.WriteString(" |")
		}
		bw.WriteString("\n")
	}

	bw.WriteString(border.String())
	if len(t.header) > 0 {
		writeRow(t.header, t.headerAlign)
		bw.WriteString(border.String())
	}
	for _, row := range t.rows {
		writeRow(row, t.columnAlign)
	}
	bw.WriteString(border.String())
	return bw.Flush()
}
