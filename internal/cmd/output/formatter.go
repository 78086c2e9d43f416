// Package output renders command results as tables, JSON or YAML.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/bookshelf/internal/cmd/table"
	"github.com/agentstation/bookshelf/pkg/errors"
)

// Format is an output format accepted by --format.
type Format string

const (
	// FormatTable renders an aligned table.
	FormatTable Format = "table"
	// FormatWide renders a table with every column.
	FormatWide Format = "wide"
	// FormatJSON renders indented JSON.
	FormatJSON Format = "json"
	// FormatYAML renders YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value. The empty string is allowed and
// means "pick for the terminal".
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", errors.NewValidationError("format", s, "must be one of: table, wide, json, yaml")
	}
}

// Resolve parses explicit and, when it is empty, picks a table for
// terminals and JSON for pipes and files.
func Resolve(explicit string, w io.Writer) (Format, error) {
	format, err := ParseFormat(explicit)
	if err != nil || format != "" {
		return format, err
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormatTable, nil
	}
	return FormatJSON, nil
}

// Formatter writes a value in one output format.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// NewFormatter returns the formatter for format. Unknown formats get a table.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return jsonFormatter{indent: "  "}
	case FormatYAML:
		return yamlFormatter{}
	default:
		return tableFormatter{}
	}
}

type jsonFormatter struct {
	indent string
}

func (f jsonFormatter) Format(w io.Writer, data any) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", f.indent)
	return enc.Encode(data)
}

type yamlFormatter struct{}

func (yamlFormatter) Format(w io.Writer, data any) error {
	out, err := yaml.MarshalWithOptions(data, yaml.Indent(2), yaml.IndentSequence(false))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// tableFormatter renders table.Data. Anything else is written as JSON.
type tableFormatter struct{}

func (tableFormatter) Format(w io.Writer, data any) error {
	td, ok := data.(table.Data)
	if !ok {
		return jsonFormatter{indent: "  "}.Format(w, data)
	}

	config := tablewriter.Config{}
	config.Header.Formatting.AutoFormat = tw.Off
	if len(td.ColumnAlignment) > 0 {
		align := alignments(td.ColumnAlignment)
		config.Header.Alignment = tw.CellAlignment{PerColumn: align}
		config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}

	t := tablewriter.NewTable(w, tablewriter.WithConfig(config))
	if len(td.Headers) > 0 {
		t.Header(cells(headerLabels(td.Headers))...)
	}
	for _, row := range td.Rows {
		if err := t.Append(cells(row)...); err != nil {
			return err
		}
	}
	return t.Render()
}

// headerLabels turns column keys such as "on_hand" into "On Hand".
func headerLabels(keys []string) []string {
	caser := cases.Title(language.English)
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = caser.String(strings.ReplaceAll(k, "_", " "))
	}
	return labels
}

func alignments(in []table.Align) []tw.Align {
	out := make([]tw.Align, len(in))
	for i, a := range in {
		switch a {
		case table.AlignLeft:
			out[i] = tw.AlignLeft
		case table.AlignCenter:
			out[i] = tw.AlignCenter
		case table.AlignRight:
			out[i] = tw.AlignRight
		default:
			out[i] = tw.Skip
		}
	}
	return out
}

func cells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
