package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/aerissecure/sheetbind/grid"
)

// ReadGridExcelize reads the first worksheet of an XLSX stream with excelize.
// Empty cells inside a row come back present and empty; excelize drops
// trailing empty cells, which leaves them absent.
func ReadGridExcelize(r io.Reader) (grid.Grid, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return grid.Grid{}, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return grid.Grid{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return grid.Grid{}, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return grid.FromStrings(sheets[0], rows), nil
}
