// Package xlsx decodes the first worksheet of an Office Open XML workbook
// into a grid of cell text.
package xlsx

import (
	"fmt"
	"os"

	"github.com/aerissecure/sheetbind/grid"
)

// Backend selects the library used to decode the workbook.
type Backend string

const (
	// BackendUnioffice reads with unioffice. It also reports table column labels.
	BackendUnioffice Backend = "unioffice"
	// BackendExcelize reads with excelize.
	BackendExcelize Backend = "excelize"
)

// ParseBackend maps a config value to a Backend. Empty selects unioffice.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case "", BackendUnioffice:
		return BackendUnioffice, nil
	case BackendExcelize:
		return BackendExcelize, nil
	default:
		return "", fmt.Errorf("unknown xlsx backend %q", s)
	}
}

// ReadFile opens path, decodes its first worksheet and closes the file
// whether or not decoding succeeds.
func ReadFile(path string, backend Backend) (grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Grid{}, err
	}
	defer f.Close()

	switch backend {
	case BackendExcelize:
		return ReadGridExcelize(f)
	case "", BackendUnioffice:
		info, err := f.Stat()
		if err != nil {
			return grid.Grid{}, err
		}
		return ReadGrid(f, info.Size())
	default:
		return grid.Grid{}, fmt.Errorf("unknown xlsx backend %q", backend)
	}
}
