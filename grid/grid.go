// Package grid holds the in-memory representation of one worksheet: an ordered
// list of rows, each an ordered list of optional text cells.
package grid

import (
	"fmt"
	"strings"
)

// Cell is a single worksheet cell. An absent cell has Present == false.
type Cell struct {
	Text    string
	Present bool
}

// Text returns a present cell holding s.
func Text(s string) Cell {
	return Cell{Text: s, Present: true}
}

// Absent is the zero cell.
var Absent = Cell{}

// Trimmed returns the cell text without surrounding whitespace, or "" if absent.
func (c Cell) Trimmed() string {
	if !c.Present {
		return ""
	}
	return strings.TrimSpace(c.Text)
}

// Blank reports whether the cell is absent or whitespace only.
func (c Cell) Blank() bool {
	return c.Trimmed() == ""
}

func (c Cell) String() string {
	if !c.Present {
		return "<absent>"
	}
	return fmt.Sprintf("%q", c.Text)
}

// Row is one worksheet row. Rows need not be rectangular; cells past the end
// of the slice are treated as absent.
type Row []Cell

// At returns the cell at col, or Absent when the row is shorter than col+1.
func (r Row) At(col int) Cell {
	if col < 0 || col >= len(r) {
		return Absent
	}
	return r[col]
}

// Blank reports whether every cell in the row is absent or whitespace only.
func (r Row) Blank() bool {
	for _, c := range r {
		if !c.Blank() {
			return false
		}
	}
	return true
}

// Grid is the cell text of a single worksheet.
type Grid struct {
	Sheet string
	Rows  []Row

	// Labels optionally carries column labels supplied by the container itself
	// (for example an xlsx table anchored at A1). Nil when none were found.
	Labels []string
}

// Len returns the number of rows.
func (g Grid) Len() int {
	return len(g.Rows)
}

// Width returns the length of the widest row.
func (g Grid) Width() int {
	w := 0
	for _, r := range g.Rows {
		if len(r) > w {
			w = len(r)
		}
	}
	return w
}

func (g Grid) String() string {
	return fmt.Sprintf("Sheet: %s, Rows: %d, Width: %d, Labels: %d", g.Sheet, g.Len(), g.Width(), len(g.Labels))
}

// FromStrings builds a grid from plain string rows, as returned by readers that
// do not distinguish empty from absent cells. Every cell is marked present.
func FromStrings(sheet string, rows [][]string) Grid {
	g := Grid{Sheet: sheet, Rows: make([]Row, len(rows))}
	for i, raw := range rows {
		row := make(Row, len(raw))
		for j, s := range raw {
			row[j] = Text(s)
		}
		g.Rows[i] = row
	}
	return g
}
