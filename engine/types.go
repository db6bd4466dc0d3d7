package engine

// ============================================================================
// PRISM ENGINE TYPES — Chart results and render-ready shapes
// ============================================================================
// Result is the engine's output: exactly one of Bar / Distribution is set.
// ChartConfig and TableData are derived views of a Result for frontends.
//
// Dependency: engine depends only on the schema field registry.
// ============================================================================

// ChartType names a result variant.
type ChartType string

const (
	ChartBar          ChartType = "bar"
	ChartDistribution ChartType = "distribution"
)

// MaxLabeledSlices is how many leading distribution slices carry inline labels.
const MaxLabeledSlices = 5

// FallbackPrefix starts the label of the synthetic slice emitted when no
// record qualifies for a distribution.
const FallbackPrefix = "Unknown "

// ============================================================================
// RESULT — Render-ready output
// ============================================================================

// Result is the engine's render-ready output.
type Result struct {
	Type  ChartType `json:"type"`
	Title string    `json:"title"`
	XAxis string    `json:"xAxis"`
	YAxis string    `json:"yAxis"`

	// Exactly one of these is populated based on Type:
	Bar          *BarSeries    `json:"bar,omitempty"`
	Distribution *Distribution `json:"distribution,omitempty"`

	// Records that survived sentinel filtering, and how many were dropped.
	Eligible int `json:"eligible"`
	Dropped  int `json:"dropped"`

	Request ChartRequest `json:"request"`
}

// Point is one labelled value: a bar or a slice.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BarSeries is the bar chart variant. Labels may repeat when a measure is set.
type BarSeries struct {
	Dimension string  `json:"dimension"`
	Measure   string  `json:"measure,omitempty"`
	Points    []Point `json:"points"`
}

// Distribution is the ranked category variant. Slices are never empty and
// are sorted by value descending, ties in first-encountered order.
type Distribution struct {
	Category     string  `json:"category"`
	Slices       []Point `json:"slices"`
	LabeledCount int     `json:"labeledCount"`
	Fallback     bool    `json:"fallback,omitempty"`
}

// Points returns the drawable points of the result, whichever variant it is.
func (r *Result) Points() []Point {
	switch {
	case r == nil:
		return nil
	case r.Bar != nil:
		return r.Bar.Points
	case r.Distribution != nil:
		return r.Distribution.Slices
	}
	return nil
}

// Total sums the values of every point.
func (r *Result) Total() float64 {
	var total float64
	for _, p := range r.Points() {
		total += p.Value
	}
	return total
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType    string        `json:"chartType"` // "bar", "pie"
	Title        string        `json:"title"`
	XAxis        string        `json:"xAxis,omitempty"`
	YAxis        string        `json:"yAxis,omitempty"`
	Series       []ChartSeries `json:"series"`
	Colors       []string      `json:"colors,omitempty"`
	LabeledCount int           `json:"labeledCount,omitempty"`
	ShowLegend   bool          `json:"showLegend"`
	ShowGrid     bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Color     string  `json:"color,omitempty"`
	ShowLabel bool    `json:"showLabel,omitempty"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "color"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}
