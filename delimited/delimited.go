// Package delimited reads CSV and other separated-text exports of a worksheet
// into a grid, decoding legacy character sets through textenc.
package delimited

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aerissecure/sheetbind/grid"
	"github.com/aerissecure/sheetbind/textenc"
)

// Options control how the text is split and decoded.
type Options struct {
	// Comma is the field separator. Zero picks ',' or '\t' from the file extension.
	Comma rune
	// Encoding names the character set, e.g. "windows-1252". Empty means UTF-8.
	Encoding string
}

// ReadGrid decodes r into a grid named sheet. Every field becomes a present
// cell. Empty lines become empty rows so that row indexes match the lines of
// the source; a record with a quoted multi-line field is still one row.
func ReadGrid(r io.Reader, sheet string, opts Options) (grid.Grid, error) {
	dec, err := textenc.NewReader(r, opts.Encoding)
	if err != nil {
		return grid.Grid{}, err
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	g := grid.Grid{Sheet: sheet}
	next := 1 // line the next record starts on when no empty lines intervene
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return grid.Grid{}, fmt.Errorf("reading delimited text: %w", err)
		}

		line, _ := cr.FieldPos(0)
		for ; next < line; next++ {
			g.Rows = append(g.Rows, nil)
		}

		row := make(grid.Row, len(rec))
		for i, v := range rec {
			row[i] = grid.Text(v)
		}
		g.Rows = append(g.Rows, row)

		last, _ := cr.FieldPos(len(rec) - 1)
		next = last + strings.Count(rec[len(rec)-1], "\n") + 1
	}
	return g, nil
}

// ReadFile opens path, reads it with ReadGrid and closes it. The sheet is
// named after the file.
func ReadFile(path string, opts Options) (grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return grid.Grid{}, err
	}
	defer f.Close()

	ext := filepath.Ext(path)
	if opts.Comma == 0 && strings.EqualFold(ext, ".tsv") {
		opts.Comma = '\t'
	}
	return ReadGrid(f, strings.TrimSuffix(filepath.Base(path), ext), opts)
}
