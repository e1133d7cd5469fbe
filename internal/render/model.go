// Package render prints imported records for the command line tool.
package render

import "fmt"

// Record is one imported row keyed by field name.
type Record map[string]string

// Set stores value under field, allocating the map on first use.
func (r *Record) Set(field, value string) {
	if *r == nil {
		*r = make(Record)
	}
	(*r)[field] = value
}

// Row is a record with the zero-based sheet row it came from.
type Row struct {
	Index  int    `json:"row"`
	Record Record `json:"record"`
}

// Table is the output of importing one source.
type Table struct {
	Source  string   `json:"source"`
	Sheet   string   `json:"sheet"`
	Header  int      `json:"header_row"`
	Fields  []string `json:"fields"`
	Rows    []Row    `json:"rows"`
	Unbound []string `json:"unbound,omitempty"`
}

func (t Table) String() string {
	return fmt.Sprintf("Source: %s, Sheet: %s, Header: %d, Fields: %d, Rows: %d", t.Source, t.Sheet, t.Header, len(t.Fields), len(t.Rows))
}
