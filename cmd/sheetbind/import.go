package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/aerissecure/sheetbind"
	"github.com/aerissecure/sheetbind/internal/render"
	"github.com/aerissecure/sheetbind/xlsx"
)

type importOptions struct {
	envFile     string
	headerRow   int
	rowSet      bool // --header-row given, even as 0
	headerLabel string
	fields      []string
	format      string
	backend     string
	encoding    string
	comma       string
	maxSize     int64
	strict      bool
	debug       bool
	jobs        int
}

func newImportCmd() *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import FILE...",
		Short: "Import the first worksheet of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.envFile)
			if err != nil {
				return err
			}
			opts.rowSet = cmd.Flags().Changed("header-row")
			if err := opts.apply(cmd, &cfg); err != nil {
				return err
			}
			return runImport(cmd.OutOrStdout(), args, cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.envFile, "env", ".env", "dotenv file with SHEETBIND_* settings")
	f.IntVar(&opts.headerRow, "header-row", 0, "zero-based header row (> 0); default is the first row")
	f.StringVar(&opts.headerLabel, "header-label", "", "use the first row whose column A equals this label as the header")
	f.StringArrayVar(&opts.fields, "field", nil, "field to bind, as Name or Name=Alias (repeatable); default is every header label")
	f.StringVar(&opts.format, "format", render.FormatJSON, "output format: json, html or dump")
	f.StringVar(&opts.backend, "backend", "", "xlsx backend: unioffice or excelize")
	f.StringVar(&opts.encoding, "encoding", "", "character set of delimited files")
	f.StringVar(&opts.comma, "comma", "", "separator of delimited files (a character or \"tab\")")
	f.Int64Var(&opts.maxSize, "max-size", 0, "maximum uncompressed size in bytes")
	f.BoolVar(&opts.strict, "strict", false, "fail on duplicate header labels or when no field binds")
	f.BoolVar(&opts.debug, "debug", false, "log each import step")
	f.IntVar(&opts.jobs, "jobs", 4, "files imported concurrently")
	return cmd
}

// apply lets explicitly set flags override the environment.
func (o importOptions) apply(cmd *cobra.Command, cfg *sheetbind.Config) error {
	f := cmd.Flags()
	if o.rowSet && o.headerLabel != "" {
		return fmt.Errorf("--header-row and --header-label are mutually exclusive")
	}
	if f.Changed("backend") {
		b, err := xlsx.ParseBackend(o.backend)
		if err != nil {
			return err
		}
		cfg.Backend = b
	}
	if f.Changed("encoding") {
		cfg.Encoding = o.encoding
	}
	if f.Changed("comma") {
		r, err := parseComma(o.comma)
		if err != nil {
			return err
		}
		cfg.Comma = r
	}
	if f.Changed("max-size") {
		cfg.MaxSize = o.maxSize
	}
	if f.Changed("strict") {
		cfg.Strict = o.strict
	}
	if f.Changed("debug") {
		cfg.Debug = o.debug
	}
	return nil
}

func (o importOptions) header() sheetbind.Header {
	switch {
	case o.headerLabel != "":
		return sheetbind.ColumnA(o.headerLabel)
	case o.rowSet:
		return sheetbind.AtRow(o.headerRow)
	default:
		return sheetbind.FirstRow()
	}
}

func runImport(w io.Writer, paths []string, cfg sheetbind.Config, opts importOptions) error {
	tables := make([]render.Table, len(paths))

	var eg errgroup.Group
	if opts.jobs > 0 {
		eg.SetLimit(opts.jobs)
	}
	for i, path := range paths {
		eg.Go(func() error {
			t, err := importFile(path, cfg, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			tables[i] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if cfg.Debug {
		for _, t := range tables {
			log.Printf("[import] %s", t)
		}
	}
	return render.Write(w, opts.format, tables)
}

func importFile(path string, cfg sheetbind.Config, opts importOptions) (render.Table, error) {
	g, err := sheetbind.ReadGrid(path, sheetbind.WithConfig(cfg))
	if err != nil {
		return render.Table{}, err
	}

	h := opts.header()
	idx, labels, err := sheetbind.HeaderLabels(g, h)
	if err != nil {
		return render.Table{}, err
	}

	specs := opts.fields
	if len(specs) == 0 {
		specs = uniqueLabels(labels)
	}
	schema, names := recordSchema(specs)

	rows, err := sheetbind.ImportGridRows(g, schema, h, sheetbind.WithConfig(cfg))
	if err != nil {
		return render.Table{}, err
	}

	t := render.Table{
		Source:  path,
		Sheet:   g.Sheet,
		Header:  idx,
		Fields:  names,
		Rows:    make([]render.Row, len(rows)),
		Unbound: sheetbind.Resolve(schema, sheetbind.ColumnMapFromLabels(labels)).Unmatched,
	}
	for i, r := range rows {
		t.Rows[i] = render.Row{Index: r.Index, Record: r.Record}
	}
	return t, nil
}

// recordSchema turns Name or Name=Alias specs into a schema over render.Record.
func recordSchema(specs []string) (sheetbind.Schema[render.Record], []string) {
	var s sheetbind.Schema[render.Record]
	names := make([]string, 0, len(specs))
	for _, spec := range specs {
		name, alias, _ := strings.Cut(spec, "=")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		s.Fields = append(s.Fields, sheetbind.Field[render.Record]{
			Name:  name,
			Alias: strings.TrimSpace(alias),
			Set: func(rec *render.Record, value string) {
				rec.Set(name, value)
			},
		})
		names = append(names, name)
	}
	return s, names
}

// uniqueLabels keeps the first spelling of each non-empty label.
func uniqueLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, l := range labels {
		key := sheetbind.NormalizeLabel(l)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(l))
	}
	return out
}
