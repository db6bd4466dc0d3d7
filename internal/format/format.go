package format

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/spektr-org/prism/engine"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
	CSV
)

// ParseMode maps "table", "markdown" and "csv" onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "table", "ascii":
		return ASCII, nil
	case "markdown", "md":
		return Markdown, nil
	case "csv":
		return CSV, nil
	}
	return ASCII, fmt.Errorf("unknown table format %q", s)
}

// TableBuilder renders rows in the Mode chosen at creation.
type TableBuilder interface {
	Header(cols ...string)
	Row(vals ...any)
	Footer(vals ...any)
	// Align sets the horizontal alignment of one 1-based column.
	Align(column int, align string)
	String() string
}

// NewTable returns a TableBuilder backed by go-pretty.
func NewTable(m Mode) TableBuilder {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	return &prettyAdapter{writer: w, mode: m}
}

type prettyAdapter struct {
	writer  table.Writer
	mode    Mode
	configs []table.ColumnConfig
}

func (a *prettyAdapter) Header(cols ...string) {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	a.writer.AppendHeader(row)
}

func (a *prettyAdapter) Row(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	a.writer.AppendRow(row)
}

func (a *prettyAdapter) Footer(vals ...any) {
	row := make(table.Row, len(vals))
	copy(row, vals)
	a.writer.AppendFooter(row)
}

func (a *prettyAdapter) Align(column int, align string) {
	a.configs = append(a.configs, table.ColumnConfig{
		Number:      column,
		Align:       toTextAlign(align),
		AlignHeader: toTextAlign(align),
		AlignFooter: toTextAlign(align),
	})
	a.writer.SetColumnConfigs(a.configs)
}

func (a *prettyAdapter) String() string {
	switch a.mode {
	case Markdown:
		return a.writer.RenderMarkdown()
	case CSV:
		return a.writer.RenderCSV()
	default:
		return a.writer.Render()
	}
}

func toTextAlign(a string) text.Align {
	switch a {
	case "left":
		return text.AlignLeft
	case "right":
		return text.AlignRight
	case "center":
		return text.AlignCenter
	default:
		return text.AlignDefault
	}
}

// RenderTable renders engine table data, with its summary as the footer.
func RenderTable(data *engine.TableData, m Mode) string {
	if data == nil {
		return ""
	}
	tb := NewTable(m)

	headers := make([]string, len(data.Columns))
	for i, c := range data.Columns {
		headers[i] = c.Label
		tb.Align(i+1, c.Align)
	}
	tb.Header(headers...)

	for _, r := range data.Rows {
		vals := make([]any, len(r))
		for i, v := range r {
			vals[i] = v
		}
		tb.Row(vals...)
	}

	if data.Summary != nil && m != CSV {
		footer := make([]any, len(data.Columns))
		footer[0] = data.Summary.Label
		for i, c := range data.Columns {
			if v, ok := data.Summary.Values[c.Key]; ok && i > 0 {
				footer[i] = v
			}
		}
		tb.Footer(footer...)
	}
	return tb.String()
}
