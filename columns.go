package sheetbind

import (
	"github.com/aerissecure/sheetbind/grid"
)

// ColumnMap maps normalized header labels to column indexes.
type ColumnMap map[string]int

// Lookup finds the column for label, normalizing it first.
func (m ColumnMap) Lookup(label string) (int, bool) {
	i, ok := m[NormalizeLabel(label)]
	return i, ok
}

// BuildColumnMap maps every non-empty header cell to its index. When two
// cells normalize to the same label the later column wins.
func BuildColumnMap(header grid.Row) ColumnMap {
	return ColumnMapFromLabels(rowLabels(header))
}

// ColumnMapFromLabels builds the same map from column labels supplied outside
// the grid, label i naming column i.
func ColumnMapFromLabels(labels []string) ColumnMap {
	m := make(ColumnMap, len(labels))
	for i, l := range labels {
		key := NormalizeLabel(l)
		if key == "" {
			continue
		}
		m[key] = i
	}
	return m
}

// DuplicateLabels returns the normalized labels that occur more than once,
// in order of their second occurrence.
func DuplicateLabels(labels []string) []string {
	seen := make(map[string]int, len(labels))
	var dups []string
	for _, l := range labels {
		key := NormalizeLabel(l)
		if key == "" {
			continue
		}
		seen[key]++
		if seen[key] == 2 {
			dups = append(dups, key)
		}
	}
	return dups
}

// HeaderLabels locates the header row of g and returns its index with the
// trimmed column labels. With the first-row strategy, labels supplied by the
// container (g.Labels) take the place of row 0.
func HeaderLabels(g grid.Grid, h Header) (int, []string, error) {
	idx, err := h.Locate(g)
	if err != nil {
		return 0, nil, err
	}
	switch {
	case h.Strategy == StrategyFirstRow && g.Labels != nil:
		return idx, g.Labels, nil
	case idx < g.Len():
		return idx, rowLabels(g.Rows[idx]), nil
	default:
		return idx, nil, nil
	}
}

func rowLabels(row grid.Row) []string {
	labels := make([]string, len(row))
	for i, c := range row {
		labels[i] = c.Trimmed()
	}
	return labels
}
