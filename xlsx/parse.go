package xlsx

import (
	"io"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"

	"github.com/aerissecure/sheetbind/grid"
)

// ReadGrid reads an XLSX from r/size and returns the cell text of its first
// worksheet. Cells covered by a merge (other than the top-left master) are
// absent, and rows missing from the sheet XML become empty rows.
func ReadGrid(r io.ReaderAt, size int64) (grid.Grid, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return grid.Grid{}, err
	}

	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return grid.Grid{}, nil
	}
	sheet := sheets[0]

	g := grid.Grid{Sheet: sheet.Name()}

	// --- merged regions: every covered cell except the master is skipped ---
	skipCells := make(map[[2]int]bool)
	if sheet.X().MergeCells != nil {
		for _, mc := range sheet.X().MergeCells.MergeCell {
			from, to, err := reference.ParseRangeReference(mc.RefAttr)
			if err != nil {
				continue
			}
			fromRow := int(from.RowIdx - 1)
			fromCol := int(from.ColumnIdx)
			toRow := int(to.RowIdx - 1)
			toCol := int(to.ColumnIdx)
			for r := fromRow; r <= toRow; r++ {
				for c := fromCol; c <= toCol; c++ {
					if r == fromRow && c == fromCol {
						continue
					}
					skipCells[[2]int{r, c}] = true
				}
			}
		}
	}

	// --- build rows ---
	for _, row := range sheet.Rows() {
		rowIdx := int(row.RowNumber()) - 1
		if rowIdx < 0 {
			continue
		}
		if rowIdx >= len(g.Rows) {
			// grow slice to accommodate sparse rows
			g.Rows = append(g.Rows, make([]grid.Row, rowIdx-len(g.Rows)+1)...)
		}

		var cells grid.Row
		for _, cell := range row.Cells() {
			colName, err := cell.Column()
			if err != nil {
				continue
			}
			colIdx := int(reference.ColumnToIndex(colName))
			if skipCells[[2]int{rowIdx, colIdx}] {
				continue
			}
			if colIdx >= len(cells) {
				cells = append(cells, make(grid.Row, colIdx-len(cells)+1)...)
			}
			cells[colIdx] = grid.Text(cell.GetFormattedValue())
		}
		g.Rows[rowIdx] = cells
	}

	if len(sheets) == 1 {
		g.Labels = tableLabels(wb)
	}
	return g, nil
}

// tableLabels returns the column names of a table anchored at A1, if the
// workbook defines one with a header row.
func tableLabels(wb *spreadsheet.Workbook) []string {
	for _, t := range wb.Tables() {
		x := t.X()
		if x == nil || x.TableColumns == nil {
			continue
		}
		if x.HeaderRowCountAttr != nil && *x.HeaderRowCountAttr == 0 {
			continue
		}
		from, _, err := reference.ParseRangeReference(x.RefAttr)
		if err != nil || from.RowIdx != 1 || from.ColumnIdx != 0 {
			continue
		}
		labels := make([]string, 0, len(x.TableColumns.TableColumn))
		for _, tc := range x.TableColumns.TableColumn {
			labels = append(labels, strings.TrimSpace(tc.NameAttr))
		}
		return labels
	}
	return nil
}
