package render

import (
	"fmt"
	"html"
	"strings"
)

// HTML renders each table as an HTML <table>, one column per field plus the
// source row number.
func HTML(tables []Table) string {
	var builder strings.Builder

	builder.WriteString(`<style>
`)
	builder.WriteString(`.table { border-collapse: collapse; margin-bottom: 2em; }
`)
	builder.WriteString(`.table td, .table th { border: 1px solid #333; padding: 4px 8px; vertical-align: bottom; white-space: nowrap; }
`)
	builder.WriteString(`.table th { text-align: left; }
`)
	builder.WriteString(`.sheet { margin-bottom: 2em; }
`)
	builder.WriteString(`</style>
`)

	for _, t := range tables {
		builder.WriteString(fmt.Sprintf(`<div class="sheet" data-source="%s" data-name="%s">
`, html.EscapeString(t.Source), html.EscapeString(t.Sheet)))
		builder.WriteString(`<div style="width:100%;overflow-x:auto;">
`)
		builder.WriteString(`<table class="table">
`)
		builder.WriteString("  <tr>\n    <th>Row</th>\n")
		for _, f := range t.Fields {
			builder.WriteString(fmt.Sprintf("    <th>%s</th>\n", html.EscapeString(f)))
		}
		builder.WriteString("  </tr>\n")

		for _, row := range t.Rows {
			// sheet rows are 1-based for readers
			builder.WriteString(fmt.Sprintf("  <tr data-row=\"%d\">\n    <td>%d</td>\n", row.Index, row.Index+1))
			for _, f := range t.Fields {
				escaped := html.EscapeString(row.Record[f])
				// Excel stores explicit line breaks as \n; preserve them in HTML
				escaped = strings.ReplaceAll(escaped, "\n", "<br>")
				builder.WriteString(fmt.Sprintf("    <td>%s</td>\n", escaped))
			}
			builder.WriteString("  </tr>\n")
		}
		builder.WriteString("</table>\n</div>\n</div>\n")
	}
	return builder.String()
}
