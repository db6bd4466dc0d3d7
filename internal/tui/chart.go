package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spektr-org/prism/engine"
)

const labelWidth = 24

// RenderChart draws a result as text bars. Bars keep engine order; a
// distribution lists slices by rank and highlights the labelled ones.
func RenderChart(result *engine.Result, width int) string {
	if result == nil {
		return Muted.Render("No chart yet.")
	}
	cfg := engine.BuildChart(result)
	if cfg == nil {
		return Muted.Render("No chart yet.")
	}

	var b strings.Builder
	b.WriteString(ChartTitle.Render(cfg.Title))
	b.WriteString("\n")

	points := cfg.Series[0].Data
	if len(points) == 0 {
		b.WriteString(Muted.Render(fmt.Sprintf("No records with a %s value.", result.XAxis)))
		return b.String()
	}

	peak := 0.0
	for _, p := range points {
		peak = max(peak, p.Value)
	}
	barWidth := max(width-labelWidth-12, 10)

	for i, p := range points {
		label := truncate(p.Label, labelWidth)
		n := 0
		if peak > 0 && p.Value > 0 {
			n = max(int(p.Value/peak*float64(barWidth)), 1)
		}

		color := p.Color
		if color == "" {
			color = cfg.Series[0].Color
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("█", n))

		line := fmt.Sprintf("%-*s %s %s", labelWidth, label, bar, engine.FormatValue(p.Value))
		if cfg.ChartType == "pie" && i >= cfg.LabeledCount {
			line = Muted.Render(fmt.Sprintf("%-*s", labelWidth, label)) + " " + bar + " " + engine.FormatValue(p.Value)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(Muted.Render(engine.Summarize(result)))
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
