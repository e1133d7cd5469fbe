package sheetbind

import (
	"errors"

	"github.com/aerissecure/sheetbind/source"
)

// Errors returned by the import operations. Compare with errors.Is.
var (
	ErrSourceNotFound     = source.ErrNotFound
	ErrUnsupportedFormat  = source.ErrUnsupportedFormat
	ErrSizeLimitExceeded  = source.ErrSizeLimitExceeded
	ErrInvalidHeaderIndex = errors.New("invalid header index")
	ErrHeaderNotFound     = errors.New("header not found")

	// Strict mode only.
	ErrDuplicateHeader = errors.New("duplicate header label")
	ErrNoFieldsBound   = errors.New("no fields bound to a column")
)
