package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/zoro11031/finder-sidebar/internal/sidebar"
)

// OutputFormat is an ls rendering flavor
type OutputFormat string

const (
	FormatTxt       OutputFormat = "txt"
	FormatQuotedTxt OutputFormat = "quoted-txt"
	FormatJSON      OutputFormat = "json"
	FormatCSV       OutputFormat = "csv"
	FormatTable     OutputFormat = "table"
)

// OutputFormats lists every accepted flavor, in help order
var OutputFormats = []OutputFormat{FormatTxt, FormatQuotedTxt, FormatJSON, FormatCSV, FormatTable}

// ParseOutputFormat validates a flavor name
func ParseOutputFormat(s string) (OutputFormat, error) {
	for _, f := range OutputFormats {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, len(OutputFormats))
	for i, f := range OutputFormats {
		names[i] = string(f)
	}
	return "", sidebar.Validationf("invalid output format %q (want one of %s)", s, strings.Join(names, "|"))
}

// RenderFavorites writes entries to w in the given flavor. JSON fails
// before anything is written.
func RenderFavorites(w io.Writer, entries []sidebar.Favorite, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return &sidebar.UnimplementedError{Feature: "json output"}
	case FormatTxt:
		renderPlain(w, entries)
	case FormatQuotedTxt:
		renderQuoted(w, entries, "\t")
	case FormatCSV:
		renderQuoted(w, entries, ",")
	case FormatTable:
		renderTable(w, entries)
	default:
		return sidebar.Validationf("invalid output format %q", format)
	}
	return nil
}

// renderPlain writes fields verbatim, with no quoting or escaping
func renderPlain(w io.Writer, entries []sidebar.Favorite) {
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Path)
	}
}

func renderTable(w io.Writer, entries []sidebar.Favorite) {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, "(no favorites)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	for _, e := range entries {
		t.AppendRow(table.Row{e.Name, e.Path})
	}
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Path"})
	t.Render()
}

func renderQuoted(w io.Writer, entries []sidebar.Favorite, sep string) {
	for _, e := range entries {
		_, _ = fmt.Fprintf(w, "%s%s%s\n", quote(e.Name), sep, quote(e.Path))
	}
}

// quote wraps s in double quotes, doubling embedded ones
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
