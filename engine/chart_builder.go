package engine

// ============================================================================
// CHART BUILDER — Produces ChartConfig from a Result
// ============================================================================
// Bar results become a single "bar" series in one fill colour. Distribution
// results become a "pie" series: slice colours cycle through the palette by
// rank and only the first LabeledCount slices are flagged for inline labels.
// Points are passed through in engine order; consumers must not re-sort.
// ============================================================================

// BuildChart produces a ChartConfig from an engine Result.
func BuildChart(result *Result, opts ...Option) *ChartConfig {
	if result == nil {
		return nil
	}
	cfg := applyOptions(opts)

	switch {
	case result.Bar != nil:
		return buildBarChart(result, cfg)
	case result.Distribution != nil:
		return buildPieChart(result, cfg)
	}
	return nil
}

func buildBarChart(result *Result, cfg *config) *ChartConfig {
	points := make([]ChartPoint, 0, len(result.Bar.Points))
	for _, p := range result.Bar.Points {
		points = append(points, ChartPoint{Label: p.Label, Value: p.Value})
	}

	return &ChartConfig{
		ChartType: "bar",
		Title:     result.Title,
		XAxis:     result.XAxis,
		YAxis:     result.YAxis,
		Series: []ChartSeries{{
			Name:  seriesName(result),
			Data:  points,
			Color: cfg.BarColor,
		}},
		Colors:   []string{cfg.BarColor},
		ShowGrid: true,
	}
}

func buildPieChart(result *Result, cfg *config) *ChartConfig {
	dist := result.Distribution
	points := make([]ChartPoint, 0, len(dist.Slices))
	colors := assignColors(cfg.Palette, len(dist.Slices))
	for i, s := range dist.Slices {
		points = append(points, ChartPoint{
			Label:     s.Label,
			Value:     s.Value,
			Color:     colors[i],
			ShowLabel: i < dist.LabeledCount,
		})
	}

	return &ChartConfig{
		ChartType:    "pie",
		Title:        result.Title,
		XAxis:        result.XAxis,
		YAxis:        result.YAxis,
		Series:       []ChartSeries{{Name: seriesName(result), Data: points}},
		Colors:       colors,
		LabeledCount: dist.LabeledCount,
		ShowLegend:   true,
	}
}

func seriesName(result *Result) string {
	if result.YAxis != "" {
		return result.YAxis
	}
	return "Value"
}

// SliceColor returns the palette colour for the slice at rank i.
func SliceColor(palette []string, i int) string {
	if len(palette) == 0 {
		palette = Category10
	}
	return palette[i%len(palette)]
}

func assignColors(palette []string, count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = SliceColor(palette, i)
	}
	return colors
}
