package engine

import (
	"fmt"

	"github.com/spektr-org/prism/schema"
)

// ============================================================================
// TABLE BUILDER — Produces TableData from a Result
// ============================================================================
// Distribution: Color | <category> | Value, one row per slice, rank order.
// Bar:          <dimension> | <measure or Count>, one row per point.
// ============================================================================

// BuildTable produces a TableData from an engine Result.
func BuildTable(result *Result, opts ...Option) *TableData {
	if result == nil {
		return nil
	}
	cfg := applyOptions(opts)

	switch {
	case result.Distribution != nil:
		return buildDistributionTable(result, cfg)
	case result.Bar != nil:
		return buildBarTable(result)
	}
	return nil
}

func buildDistributionTable(result *Result, cfg *config) *TableData {
	dist := result.Distribution
	columns := []Column{
		{Key: "color", Label: "Color", Type: "color", Align: "center"},
		{Key: "label", Label: schema.DisplayName(dist.Category), Type: "text", Align: "left"},
		{Key: "value", Label: "Value", Type: "number", Align: "right"},
	}

	rows := make([][]string, 0, len(dist.Slices))
	for i, s := range dist.Slices {
		rows = append(rows, []string{SliceColor(cfg.Palette, i), s.Label, FormatValue(s.Value)})
	}

	return &TableData{
		Title:   result.Title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("Total (%d categories)", len(dist.Slices)),
			Values: map[string]string{
				"value": FormatValue(result.Total()),
			},
		},
	}
}

func buildBarTable(result *Result) *TableData {
	bar := result.Bar
	valueLabel := bar.Measure
	if bar.Measure == "" {
		valueLabel = "Count"
	}
	columns := []Column{
		{Key: "label", Label: schema.DisplayName(bar.Dimension), Type: "text", Align: "left"},
		{Key: "value", Label: schema.DisplayName(valueLabel), Type: "number", Align: "right"},
	}

	rows := make([][]string, 0, len(bar.Points))
	for _, p := range bar.Points {
		rows = append(rows, []string{p.Label, FormatValue(p.Value)})
	}

	return &TableData{
		Title:   result.Title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("Total (%d bars)", len(bar.Points)),
			Values: map[string]string{
				"value": FormatValue(result.Total()),
			},
		},
	}
}
