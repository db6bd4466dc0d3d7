package render

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spektr-org/prism/engine"
)

// Options sizes the rendered chart. Zero values take the defaults.
type Options struct {
	Width  int
	Height int
	Engine []engine.Option // palette / bar colour overrides
}

const (
	defaultWidth  = 960
	defaultHeight = 500
)

// SVG draws an engine result as an SVG document. Bars are drawn one per
// point in engine order; pie slices carry labels only up to LabeledCount.
func SVG(w io.Writer, result *engine.Result, opts Options) error {
	cfg := engine.BuildChart(result, opts.Engine...)
	if cfg == nil || len(cfg.Series) == 0 {
		return fmt.Errorf("nothing to render")
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}

	switch cfg.ChartType {
	case "bar":
		return renderBar(w, cfg, opts)
	case "pie":
		return renderPie(w, cfg, opts)
	}
	return fmt.Errorf("unsupported chart type %q", cfg.ChartType)
}

func renderBar(w io.Writer, cfg *engine.ChartConfig, opts Options) error {
	series := cfg.Series[0]
	if len(series.Data) == 0 {
		return emptySVG(w, cfg.Title, opts)
	}

	fill := hexColor(series.Color)
	bars := make([]chart.Value, 0, len(series.Data))
	lo, hi := 0.0, 0.0
	for _, p := range series.Data {
		bars = append(bars, chart.Value{
			Label: p.Label,
			Value: p.Value,
			Style: chart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		})
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}
	if hi == lo {
		hi = lo + 1
	}

	bc := chart.BarChart{
		Title:      cfg.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		BarSpacing: 2,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name:  cfg.YAxis,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}
	return bc.Render(chart.SVG, w)
}

func renderPie(w io.Writer, cfg *engine.ChartConfig, opts Options) error {
	data := cfg.Series[0].Data
	values := make([]chart.Value, 0, len(data))
	for _, p := range data {
		label := ""
		if p.ShowLabel {
			label = p.Label
		}
		c := hexColor(p.Color)
		values = append(values, chart.Value{
			Label: label,
			Value: p.Value,
			Style: chart.Style{FillColor: c, StrokeColor: drawing.ColorWhite, StrokeWidth: 1},
		})
	}

	pc := chart.PieChart{
		Title:  cfg.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Values: values,
	}
	return pc.Render(chart.SVG, w)
}

func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// emptySVG writes a blank canvas with the title for bar results without points.
func emptySVG(w io.Writer, title string, opts Options) error {
	_, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><text x="%d" y="24" text-anchor="middle">%s</text></svg>`,
		opts.Width, opts.Height, opts.Width/2, html.EscapeString(title))
	return err
}
