package delimited

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aerissecure/sheetbind/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadGridRagged(t *testing.T) {
	in := "ID,Name,Phone\n1001,John\n1002, Jane ,555\n"
	g, err := ReadGrid(strings.NewReader(in), "people", Options{})
	require.NoError(t, err)

	require.Equal(t, 3, g.Len())
	assert.Equal(t, "people", g.Sheet)
	assert.Len(t, g.Rows[1], 2)
	assert.Equal(t, grid.Absent, g.Rows[1].At(2))
	assert.Equal(t, "Jane", g.Rows[2].At(1).Trimmed())
}

func TestReadGridEncoding(t *testing.T) {
	// "Name\nJosé\n" in windows-1252
	in := []byte{'N', 'a', 'm', 'e', '\n', 'J', 'o', 's', 0xE9, '\n'}
	g, err := ReadGrid(bytes.NewReader(in), "s", Options{Encoding: "windows-1252"})
	require.NoError(t, err)
	assert.Equal(t, "José", g.Rows[1].At(0).Text)

	_, err = ReadGrid(bytes.NewReader(in), "s", Options{Encoding: "bogus"})
	assert.Error(t, err)
}

func TestReadFileTSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.tsv")
	require.NoError(t, os.WriteFile(path, []byte("a\tb\n1\t2\n"), 0o644))

	g, err := ReadFile(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "export", g.Sheet)
	assert.Equal(t, "2", g.Rows[1].At(1).Text)
}

func TestReadGridKeepsEmptyLines(t *testing.T) {
	in := "Report\n\nID,First Name\n1,Ann\n\n2,Bo\n"
	g, err := ReadGrid(strings.NewReader(in), "s", Options{})
	require.NoError(t, err)

	require.Equal(t, 6, g.Len(), "one row per line")
	assert.True(t, g.Rows[1].Blank())
	assert.Equal(t, "ID", g.Rows[2].At(0).Text)
	assert.Equal(t, "Ann", g.Rows[3].At(1).Text)
	assert.True(t, g.Rows[4].Blank())
	assert.Equal(t, "Bo", g.Rows[5].At(1).Text)
}

func TestReadGridMultiLineField(t *testing.T) {
	in := "ID,Note\n1,\"first\nsecond\"\n\n2,x\n"
	g, err := ReadGrid(strings.NewReader(in), "s", Options{})
	require.NoError(t, err)

	require.Equal(t, 4, g.Len(), "a multi-line record is a single row")
	assert.Equal(t, "first\nsecond", g.Rows[1].At(1).Text)
	assert.True(t, g.Rows[2].Blank())
	assert.Equal(t, "2", g.Rows[3].At(0).Text)
}

func TestReadGridLeadingEmptyLines(t *testing.T) {
	g, err := ReadGrid(strings.NewReader("\n\na,b\n"), "s", Options{})
	require.NoError(t, err)

	require.Equal(t, 3, g.Len())
	assert.Equal(t, "a", g.Rows[2].At(0).Text)
}
