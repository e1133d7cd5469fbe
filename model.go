package sheetbind

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Field declares one record field: the name it is known by, an optional
// display alias matched against header labels in place of the name, and the
// setter that stores a cell's trimmed text into a record.
type Field[T any] struct {
	Name  string
	Alias string
	Set   func(rec *T, value string)
}

// Key returns the label the field binds to: its alias if set, else its name.
func (f Field[T]) Key() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

// As returns a copy of f bound through alias.
func (f Field[T]) As(alias string) Field[T] {
	f.Alias = alias
	return f
}

func (f Field[T]) String() string {
	if f.Alias == "" {
		return f.Name
	}
	return fmt.Sprintf("%s (%q)", f.Name, f.Alias)
}

// String declares a text field addressed by ptr.
//
//	sheetbind.String("FirstName", func(p *Person) *string { return &p.FirstName }).As("First Name")
func String[T any](name string, ptr func(*T) *string) Field[T] {
	return Field[T]{
		Name: name,
		Set: func(rec *T, value string) {
			*ptr(rec) = value
		},
	}
}

// Schema is the declared field list of a record type, in declaration order.
type Schema[T any] struct {
	Fields []Field[T]
}

// NewSchema returns a schema over fields.
func NewSchema[T any](fields ...Field[T]) Schema[T] {
	return Schema[T]{Fields: fields}
}

// Binding pairs a field with the column it reads from.
type Binding[T any] struct {
	Field  Field[T]
	Column int
}

func (b Binding[T]) String() string {
	return fmt.Sprintf("%s -> column %d", b.Field, b.Column)
}

// Resolution is the result of matching a schema against a column map.
type Resolution[T any] struct {
	Bindings []Binding[T]
	// Unmatched lists the names of fields with no column, in declaration order.
	Unmatched []string
}

// Row is a materialized record with the zero-based grid row it came from.
type Row[T any] struct {
	Index  int
	Record T
}

// NormalizeLabel is the comparison form of every label and binding key: the
// trimmed text under full Unicode case folding, so "STRASSE" matches "straße".
func NormalizeLabel(s string) string {
	// a Caser keeps state and must not be shared between goroutines
	return cases.Fold().String(strings.TrimSpace(s))
}
