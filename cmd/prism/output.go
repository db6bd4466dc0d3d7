package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spektr-org/prism/engine"
	"github.com/spektr-org/prism/internal/format"
	"github.com/spektr-org/prism/internal/render"
	"github.com/spektr-org/prism/internal/tui"
)

// chartOutput is the JSON document written by `prism chart --format json`.
type chartOutput struct {
	Result  *engine.Result      `json:"result"`
	Chart   *engine.ChartConfig `json:"chart"`
	Table   *engine.TableData   `json:"table"`
	Summary string              `json:"summary"`
}

const defaultTextWidth = 80

// outputFormats lists every value --format accepts.
var outputFormats = []string{"table", "markdown", "csv", "json", "pretty", "svg", "text"}

// writeResult renders result to w in the named format.
func writeResult(w io.Writer, result *engine.Result, outFormat string, width, height int) error {
	switch outFormat {
	case "json", "pretty":
		return writeJSON(w, chartOutput{
			Result:  result,
			Chart:   engine.BuildChart(result),
			Table:   engine.BuildTable(result),
			Summary: engine.Summarize(result),
		}, outFormat)

	case "table", "markdown":
		mode, err := format.ParseMode(outFormat)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, format.RenderTable(engine.BuildTable(result), mode))
		return err

	case "csv":
		return writeCSV(w, result)

	case "svg":
		return render.SVG(w, result, render.Options{Width: width, Height: height})

	case "text":
		if width <= 0 {
			width = defaultTextWidth
		}
		_, err := fmt.Fprintln(w, tui.RenderChart(result, width))
		return err
	}
	return fmt.Errorf("unknown format %q (want one of %v)", outFormat, outputFormats)
}

// ============================================================================
// CSV OUTPUT — Sheets-ready label/value columns
// ============================================================================

func writeCSV(w io.Writer, result *engine.Result) error {
	cw := csv.NewWriter(w)

	chart := engine.BuildChart(result)
	if chart == nil || len(chart.Series) == 0 {
		cw.Write([]string{"Result", "No data"})
		cw.Flush()
		return cw.Error()
	}

	xLabel, yLabel := chart.XAxis, chart.YAxis
	if xLabel == "" {
		xLabel = "Label"
	}
	if yLabel == "" {
		yLabel = "Value"
	}

	cw.Write([]string{xLabel, yLabel})
	for _, d := range chart.Series[0].Data {
		cw.Write([]string{d.Label, engine.FormatValue(d.Value)})
	}
	cw.Flush()
	return cw.Error()
}

// ============================================================================
// JSON OUTPUT
// ============================================================================

func writeJSON(w io.Writer, v any, outFormat string) error {
	var (
		out []byte
		err error
	)
	if outFormat == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
