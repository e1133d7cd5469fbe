package sheetbind

import (
	"fmt"

	"github.com/aerissecure/sheetbind/grid"
)

// Strategy is how the header row is chosen.
type Strategy int

const (
	// StrategyFirstRow uses row 0.
	StrategyFirstRow Strategy = iota
	// StrategyIndex uses a caller supplied row index greater than zero.
	StrategyIndex
	// StrategyColumnA uses the first row whose column A cell matches a label.
	StrategyColumnA
)

func (s Strategy) String() string {
	switch s {
	case StrategyFirstRow:
		return "first-row"
	case StrategyIndex:
		return "index"
	case StrategyColumnA:
		return "column-a"
	default:
		return "unknown"
	}
}

// Header selects the header row of a grid.
type Header struct {
	Strategy Strategy
	Index    int
	Label    string
}

// FirstRow selects row 0 as the header.
func FirstRow() Header {
	return Header{Strategy: StrategyFirstRow}
}

// AtRow selects row index as the header. Index 0 is rejected when located;
// use FirstRow for it.
func AtRow(index int) Header {
	return Header{Strategy: StrategyIndex, Index: index}
}

// ColumnA selects the first row whose column A text equals label, ignoring
// case and surrounding whitespace.
func ColumnA(label string) Header {
	return Header{Strategy: StrategyColumnA, Label: label}
}

func (h Header) String() string {
	switch h.Strategy {
	case StrategyIndex:
		return fmt.Sprintf("%s(%d)", h.Strategy, h.Index)
	case StrategyColumnA:
		return fmt.Sprintf("%s(%q)", h.Strategy, h.Label)
	default:
		return h.Strategy.String()
	}
}

// Locate returns the zero-based index of the header row in g. Data rows
// start at the returned index plus one.
func (h Header) Locate(g grid.Grid) (int, error) {
	switch h.Strategy {
	case StrategyFirstRow:
		return 0, nil
	case StrategyIndex:
		if h.Index <= 0 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidHeaderIndex, h.Index)
		}
		if h.Index >= g.Len() {
			return 0, fmt.Errorf("%w: row %d is past the last row (%d rows)", ErrHeaderNotFound, h.Index, g.Len())
		}
		return h.Index, nil
	case StrategyColumnA:
		want := NormalizeLabel(h.Label)
		for i, row := range g.Rows {
			if NormalizeLabel(row.At(0).Trimmed()) == want {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: no row with %q in column A", ErrHeaderNotFound, h.Label)
	default:
		return 0, fmt.Errorf("unknown header strategy %d", h.Strategy)
	}
}
