package sheetbind

import (
	"github.com/aerissecure/sheetbind/grid"
)

// Materialize builds one record per non-blank row from row first to the end
// of g, in row order.
func Materialize[T any](g grid.Grid, first int, bindings []Binding[T]) []T {
	rows := MaterializeRows(g, first, bindings)
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.Record
	}
	return out
}

// MaterializeRows is Materialize keeping the source row index of each record.
// Skipped blank rows do not shift the indexes of later records.
func MaterializeRows[T any](g grid.Grid, first int, bindings []Binding[T]) []Row[T] {
	if first < 0 {
		first = 0
	}
	var out []Row[T]
	for i := first; i < len(g.Rows); i++ {
		row := g.Rows[i]
		if row.Blank() {
			continue
		}
		var rec T
		for _, b := range bindings {
			c := row.At(b.Column)
			if !c.Present || b.Field.Set == nil {
				continue
			}
			b.Field.Set(&rec, c.Trimmed())
		}
		out = append(out, Row[T]{Index: i, Record: rec})
	}
	return out
}
