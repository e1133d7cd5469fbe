// Package source checks a spreadsheet reference before it is decoded: the
// file must exist, be a supported container, and fit within the size limit.
package source

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxSize is the default ceiling on a source's uncompressed size.
const DefaultMaxSize int64 = 30 << 20

var (
	ErrNotFound          = errors.New("source not found")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
	ErrSizeLimitExceeded = errors.New("source exceeds size limit")
)

// Format identifies how a source is decoded into a grid.
type Format int

const (
	FormatUnknown Format = iota
	// FormatXLSX is an Office Open XML workbook (.xlsx, .xlsm).
	FormatXLSX
	// FormatDelimited is separated text (.csv, .tsv, .txt).
	FormatDelimited
)

func (f Format) String() string {
	switch f {
	case FormatXLSX:
		return "xlsx"
	case FormatDelimited:
		return "delimited"
	default:
		return "unknown"
	}
}

var extensions = map[string]Format{
	".xlsx": FormatXLSX,
	".xlsm": FormatXLSX,
	".csv":  FormatDelimited,
	".tsv":  FormatDelimited,
	".txt":  FormatDelimited,
}

// Info describes a source that passed inspection.
type Info struct {
	Path   string
	Format Format
	// Size is the uncompressed size: the sum of all zip entries for xlsx, the
	// file size for delimited text.
	Size int64
}

// Inspect validates path. A maxSize <= 0 disables the size check.
func Inspect(path string, maxSize int64) (Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Info{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Info{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.IsDir() {
		return Info{}, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFormat, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensions[ext]
	if !ok {
		return Info{}, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}

	info := Info{Path: path, Format: format, Size: st.Size()}
	if format == FormatXLSX {
		size, err := uncompressedSize(path)
		if err != nil {
			return Info{}, err
		}
		info.Size = size
	}

	if maxSize > 0 && info.Size > maxSize {
		return Info{}, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrSizeLimitExceeded, path, info.Size, maxSize)
	}
	return info, nil
}

func uncompressedSize(path string) (int64, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return 0, fmt.Errorf("%w: opening ZIP archive: %v", ErrUnsupportedFormat, err)
	}
	defer zr.Close()

	sizes := make([]uint64, len(zr.File))
	for i, f := range zr.File {
		sizes[i] = f.UncompressedSize64
	}
	total, ok := sumSizes(sizes)
	if !ok {
		return 0, fmt.Errorf("%w: %s declares more than %d bytes uncompressed", ErrSizeLimitExceeded, path, int64(math.MaxInt64))
	}
	return total, nil
}

// sumSizes adds sizes, reporting false once the total no longer fits an int64.
func sumSizes(sizes []uint64) (int64, bool) {
	var total uint64
	for _, n := range sizes {
		if n > math.MaxInt64-total {
			return 0, false
		}
		total += n
	}
	return int64(total), true
}
