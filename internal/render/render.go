package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
)

// Formats accepted by Write.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatDump = "dump"
)

// Write prints tables to w in the named format.
func Write(w io.Writer, format string, tables []Table) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tables)
	case FormatHTML:
		_, err := io.WriteString(w, HTML(tables))
		return err
	case FormatDump:
		cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
		cfg.Fdump(w, tables)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
