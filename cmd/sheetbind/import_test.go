package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/sheetbind"
	"github.com/aerissecure/sheetbind/internal/render"
	"github.com/aerissecure/sheetbind/xlsx"
)

func TestParseComma(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{"ab", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseComma(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	env := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(env, []byte("SHEETBIND_MAX_SIZE=1024\nSHEETBIND_BACKEND=excelize\nSHEETBIND_STRICT=true\n"), 0o644))
	for _, k := range []string{"SHEETBIND_MAX_SIZE", "SHEETBIND_BACKEND", "SHEETBIND_STRICT", "SHEETBIND_DEBUG", "SHEETBIND_ENCODING", "SHEETBIND_COMMA"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv("SHEETBIND_COMMA", "tab")

	cfg, err := LoadConfig(env)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), cfg.MaxSize)
	assert.Equal(t, xlsx.BackendExcelize, cfg.Backend)
	assert.True(t, cfg.Strict)
	assert.Equal(t, '\t', cfg.Comma)

	cfg, err = LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	t.Setenv("SHEETBIND_BACKEND", "xlrd")
	_, err = LoadConfig("")
	assert.Error(t, err)
}

func TestRecordSchema(t *testing.T) {
	s, names := recordSchema([]string{"ID", "FirstName = First Name", " ", "=x"})
	assert.Equal(t, []string{"ID", "FirstName"}, names)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, "First Name", s.Fields[1].Key())

	var r render.Record
	s.Fields[1].Set(&r, "John")
	assert.Equal(t, render.Record{"FirstName": "John"}, r)
}

func TestUniqueLabels(t *testing.T) {
	assert.Equal(t, []string{"ID", "Name"}, uniqueLabels([]string{" ID", "", "Name", "id", "NAME "}))
}

func TestRunImport(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.csv")
	b := filepath.Join(dir, "b.csv")
	require.NoError(t, os.WriteFile(a, []byte("ID,First Name\n1,John\n,\n2,Jane\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("Report\nID,First Name\n3,Ann\n"), 0o644))

	var out bytes.Buffer
	opts := importOptions{format: render.FormatJSON, jobs: 2, headerLabel: "id"}
	err := runImport(&out, []string{a, b}, sheetbind.DefaultConfig(), opts)
	require.NoError(t, err)

	var tables []render.Table
	require.NoError(t, json.Unmarshal(out.Bytes(), &tables))
	require.Len(t, tables, 2)

	assert.Equal(t, []string{"ID", "First Name"}, tables[0].Fields)
	require.Len(t, tables[0].Rows, 2)
	assert.Equal(t, 3, tables[0].Rows[1].Index)
	assert.Equal(t, "Jane", tables[0].Rows[1].Record["First Name"])

	assert.Equal(t, 1, tables[1].Header)
	assert.Equal(t, "Ann", tables[1].Rows[0].Record["First Name"])
}

func TestRunImportFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.csv")
	require.NoError(t, os.WriteFile(path, []byte("ID,First Name\n1,John\n"), 0o644))

	var out bytes.Buffer
	opts := importOptions{format: render.FormatJSON, fields: []string{"FirstName=First Name", "Email"}}
	require.NoError(t, runImport(&out, []string{path}, sheetbind.DefaultConfig(), opts))

	var tables []render.Table
	require.NoError(t, json.Unmarshal(out.Bytes(), &tables))
	assert.Equal(t, []string{"Email"}, tables[0].Unbound)
	assert.Equal(t, render.Record{"FirstName": "John"}, tables[0].Rows[0].Record)

	err := runImport(&out, []string{filepath.Join(t.TempDir(), "none.csv")}, sheetbind.DefaultConfig(), opts)
	assert.ErrorIs(t, err, sheetbind.ErrSourceNotFound)
}

func TestImportCmdHeaderRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.csv")
	require.NoError(t, os.WriteFile(path, []byte("Report\nID,First Name\n1,John\n"), 0o644))

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := newImportCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(append([]string{path, "--env", ""}, args...))
		err := cmd.Execute()
		return out.String(), err
	}

	_, err := run("--header-row", "0")
	assert.ErrorIs(t, err, sheetbind.ErrInvalidHeaderIndex)

	_, err = run("--header-row", "0", "--header-label", "ID")
	assert.Error(t, err)

	out, err := run("--header-row", "1")
	require.NoError(t, err)
	var tables []render.Table
	require.NoError(t, json.Unmarshal([]byte(out), &tables))
	require.Len(t, tables, 1)
	assert.Equal(t, 1, tables[0].Header)
	assert.Equal(t, "John", tables[0].Rows[0].Record["First Name"])

	out, err = run()
	require.NoError(t, err)
	tables = nil
	require.NoError(t, json.Unmarshal([]byte(out), &tables))
	assert.Equal(t, 0, tables[0].Header, "no flag means the first row")
}
