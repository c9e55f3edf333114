package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// cellPadding is the number of spaces added around the widest cell of a column.
const cellPadding = 2

// Border and separator characters.
const (
	cornerChar    = "+"
	lineChar      = "-"
	separatorChar = "|"
)

// DisplayWidth returns the number of terminal cells s occupies.
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ColumnWidth returns the widest of the column header and every value of col
// in page. Only the records passed in are measured.
func ColumnWidth(col string, page []Record) (int, error) {
	if col == "" {
		return 0, ErrEmptyColumn
	}
	width := DisplayWidth(col)
	for _, r := range page {
		v, err := r.Value(col)
		if err != nil {
			return 0, err
		}
		width = max(width, DisplayWidth(v))
	}
	return width, nil
}

// Center places s in a field of the given width. The left side receives
// floor(pad/2) spaces and the right side the remainder. A value wider than
// the field is returned unpadded.
func Center(s string, field int) string {
	pad := max(field-DisplayWidth(s), 0)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Layout holds the column order and page-local widths for one page.
type Layout struct {
	columns []string
	widths  []int
}

// NewLayout measures every column over page.
// It returns ErrNoColumns for an empty column set and ErrMissingColumn when a
// record lacks one of the columns.
func NewLayout(columns []string, page []Record) (*Layout, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	widths := make([]int, len(columns))
	for i, col := range columns {
		w, err := ColumnWidth(col, page)
		if err != nil {
			return nil, err
		}
		widths[i] = w
	}
	return &Layout{columns: columns, widths: widths}, nil
}

// Border returns a horizontal rule such as "+------+-----+\n".
func (l *Layout) Border() string {
	var b strings.Builder
	for _, w := range l.widths {
		b.WriteString(cornerChar)
		b.WriteString(strings.Repeat(lineChar, w+cellPadding))
	}
	b.WriteString(cornerChar)
	b.WriteString("\n")
	return b.String()
}

// Row renders cells, one per column, each centered within its column.
func (l *Layout) Row(cells []string) (string, error) {
	if len(cells) != len(l.columns) {
		return "", fmt.Errorf("%w: got %d cells for %d columns", ErrCellCount, len(cells), len(l.columns))
	}
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(separatorChar)
		b.WriteString(Center(cell, l.widths[i]+cellPadding))
	}
	b.WriteString(separatorChar)
	b.WriteString("\n")
	return b.String(), nil
}

// Header renders the column names as a row.
func (l *Layout) Header() string {
	// Column count always matches.
	row, _ := l.Row(l.columns)
	return row
}

// RecordRow renders the values of r in column order.
func (l *Layout) RecordRow(r Record) (string, error) {
	cells := make([]string, len(l.columns))
	for i, col := range l.columns {
		v, err := r.Value(col)
		if err != nil {
			return "", err
		}
		cells[i] = v
	}
	return l.Row(cells)
}

// Render writes the full bordered table for page: border, header, border,
// then every record followed by a border.
func Render(w io.Writer, columns []string, page []Record) error {
	l, err := NewLayout(columns, page)
	if err != nil {
		return err
	}

	border := l.Border()
	var b strings.Builder
	b.WriteString(border)
	b.WriteString(l.Header())
	b.WriteString(border)
	for _, r := range page {
		row, rowErr := l.RecordRow(r)
		if rowErr != nil {
			return rowErr
		}
		b.WriteString(row)
		b.WriteString(border)
	}

	_, err = io.WriteString(w, b.String())
	return err
}
