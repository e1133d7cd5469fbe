// Package sheetbind turns the first worksheet of a spreadsheet into a slice of
// typed records. One row of the sheet is the header: its labels are matched
// against the fields of a Schema, and every non-blank row below it becomes a
// record.
//
// Basic usage:
//
//	type Person struct{ ID, FirstName, LastName, Phone string }
//
//	schema := sheetbind.NewSchema(
//	    sheetbind.String("ID", func(p *Person) *string { return &p.ID }),
//	    sheetbind.String("FirstName", func(p *Person) *string { return &p.FirstName }).As("First Name"),
//	    sheetbind.String("LastName", func(p *Person) *string { return &p.LastName }).As("Last Name"),
//	    sheetbind.String("Phone", func(p *Person) *string { return &p.Phone }),
//	)
//	people, err := sheetbind.Import("people.xlsx", schema)
//
// The header can also be an explicit row (ImportAtRow) or the first row whose
// column A holds a given label (ImportByLabel).
package sheetbind

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/aerissecure/sheetbind/delimited"
	"github.com/aerissecure/sheetbind/grid"
	"github.com/aerissecure/sheetbind/source"
	"github.com/aerissecure/sheetbind/textenc"
	"github.com/aerissecure/sheetbind/xlsx"
)

// Import reads path using its first row as the header.
func Import[T any](path string, s Schema[T], opts ...Option) ([]T, error) {
	rows, err := ImportRows(path, s, FirstRow(), opts...)
	return records(rows, err)
}

// ImportAtRow reads path using row headerRow (zero-based, > 0) as the header.
func ImportAtRow[T any](path string, s Schema[T], headerRow int, opts ...Option) ([]T, error) {
	rows, err := ImportRows(path, s, AtRow(headerRow), opts...)
	return records(rows, err)
}

// ImportByLabel reads path using the first row whose column A equals label
// as the header.
func ImportByLabel[T any](path string, s Schema[T], label string, opts ...Option) ([]T, error) {
	rows, err := ImportRows(path, s, ColumnA(label), opts...)
	return records(rows, err)
}

// ImportRows reads path with header selection h and returns each record with
// the index of the row it came from.
func ImportRows[T any](path string, s Schema[T], h Header, opts ...Option) ([]Row[T], error) {
	cfg := newConfig(opts)
	l := newLogger(cfg)
	g, err := readSource(path, cfg, l)
	if err != nil {
		return nil, err
	}
	return bind(g, s, h, cfg, l)
}

// ReadGrid checks path and decodes its first worksheet without binding it.
func ReadGrid(path string, opts ...Option) (grid.Grid, error) {
	cfg := newConfig(opts)
	return readSource(path, cfg, newLogger(cfg))
}

func readSource(path string, cfg Config, l logger) (grid.Grid, error) {
	textenc.Register()

	info, err := source.Inspect(path, cfg.MaxSize)
	if err != nil {
		l.printf("rejected %s: %v", path, err)
		return grid.Grid{}, err
	}
	l.printf("reading %s (%s, %d bytes uncompressed)", path, info.Format, info.Size)

	g, err := decode(info, cfg)
	if err != nil {
		l.printf("decoding %s failed: %v", path, err)
		return grid.Grid{}, err
	}
	return g, nil
}

// ImportGrid binds an already decoded grid.
func ImportGrid[T any](g grid.Grid, s Schema[T], h Header, opts ...Option) ([]T, error) {
	rows, err := ImportGridRows(g, s, h, opts...)
	return records(rows, err)
}

// ImportGridRows is ImportGrid keeping source row indexes.
func ImportGridRows[T any](g grid.Grid, s Schema[T], h Header, opts ...Option) ([]Row[T], error) {
	cfg := newConfig(opts)
	return bind(g, s, h, cfg, newLogger(cfg))
}

func bind[T any](g grid.Grid, s Schema[T], h Header, cfg Config, l logger) ([]Row[T], error) {
	idx, labels, err := HeaderLabels(g, h)
	if err != nil {
		l.printf("locating header %s: %v", h, err)
		return nil, err
	}
	columns := ColumnMapFromLabels(labels)

	if dups := DuplicateLabels(labels); len(dups) > 0 {
		if cfg.Strict {
			return nil, fmt.Errorf("%w: %q in header row %d", ErrDuplicateHeader, dups, idx)
		}
		l.printf("header row %d repeats %q, using the last column of each", idx, dups)
	}

	res := Resolve(s, columns)
	if len(res.Unmatched) > 0 {
		l.printf("fields without a column: %v", res.Unmatched)
	}
	if cfg.Strict && len(res.Bindings) == 0 && len(s.Fields) > 0 {
		return nil, fmt.Errorf("%w: header row %d has none of %d fields", ErrNoFieldsBound, idx, len(s.Fields))
	}

	rows := MaterializeRows(g, idx+1, res.Bindings)
	l.printf("header %s at row %d, %d of %d fields bound, %d records from %d data rows",
		h, idx, len(res.Bindings), len(s.Fields), len(rows), max(g.Len()-idx-1, 0))
	return rows, nil
}

func decode(info source.Info, cfg Config) (grid.Grid, error) {
	switch info.Format {
	case source.FormatXLSX:
		backend, err := xlsx.ParseBackend(string(cfg.Backend))
		if err != nil {
			return grid.Grid{}, err
		}
		g, err := xlsx.ReadFile(info.Path, backend)
		if err != nil {
			return grid.Grid{}, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, info.Path, err)
		}
		return g, nil
	case source.FormatDelimited:
		return delimited.ReadFile(info.Path, delimited.Options{Comma: cfg.Comma, Encoding: cfg.Encoding})
	default:
		return grid.Grid{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, info.Path)
	}
}

func records[T any](rows []Row[T], err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.Record
	}
	return out, nil
}

type logger struct {
	on bool
	id string
}

func newLogger(cfg Config) logger {
	if !Debug && !cfg.Debug {
		return logger{}
	}
	return logger{on: true, id: uuid.NewString()}
}

func (l logger) printf(format string, args ...any) {
	if !l.on {
		return
	}
	log.Printf("[sheetbind %s] "+format, append([]any{l.id[:8]}, args...)...)
}
