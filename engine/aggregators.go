package engine

import (
	"sort"
	"strconv"
)

// ============================================================================
// AGGREGATORS — Bar and distribution pipelines via RecordView
// ============================================================================
// Bar:          filter sentinel → one point per record (or count rollup)
// Distribution: filter sentinel → count by label → fallback → stable rank
//
// Both are pure: they read the view and allocate only their output.
// ============================================================================

// AggregateBar builds the bar series for a validated BarRequest.
// With a measure, every surviving record is its own point in store order,
// so records sharing a dimension value share a label. Without a measure,
// records are rolled up into one counted point per distinct label.
// An empty store yields an empty series.
func AggregateBar(view RecordView, req BarRequest) BarSeries {
	eligible := ExcludeMissing(view, req.Dimension)

	series := BarSeries{Dimension: req.Dimension, Measure: req.Measure}
	if req.CountMode() {
		series.Points = countByLabel(eligible, req.Dimension)
		return series
	}

	n := eligible.Len()
	series.Points = make([]Point, 0, n)
	for i := 0; i < n; i++ {
		series.Points = append(series.Points, Point{
			Label: eligible.Value(i, req.Dimension).Label(),
			Value: eligible.Value(i, req.Measure).Float(),
		})
	}
	return series
}

// AggregateDistribution builds the ranked distribution for a validated
// DistributionRequest. The result always has at least one slice.
func AggregateDistribution(view RecordView, req DistributionRequest) Distribution {
	eligible := ExcludeMissing(view, req.Category)

	dist := Distribution{Category: req.Category}
	dist.Slices = countByLabel(eligible, req.Category)
	if len(dist.Slices) == 0 {
		dist.Slices = []Point{{Label: FallbackLabel(req.Category), Value: 1}}
		dist.Fallback = true
	}

	RankSlices(dist.Slices)
	dist.LabeledCount = min(MaxLabeledSlices, len(dist.Slices))
	return dist
}

// FallbackLabel is the label of the synthetic slice for category.
func FallbackLabel(category string) string {
	return FallbackPrefix + category
}

// RankSlices sorts by value descending. The sort is stable, so equal values
// keep their first-encountered order.
func RankSlices(points []Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Value > points[j].Value
	})
}

// ============================================================================
// GROUPING
// ============================================================================

// groupKey identifies a category value: the number 2017 and the string
// "2017" are different groups that share a label.
type groupKey struct {
	kind  Kind
	label string
}

// countByLabel groups a view by the value of field and counts members.
// Groups come out in the order their first member appears.
func countByLabel(view RecordView, field string) []Point {
	index := make(map[groupKey]int)
	points := make([]Point, 0)

	for i := 0; i < view.Len(); i++ {
		v := view.Value(i, field)
		key := groupKey{kind: v.Kind(), label: v.Label()}
		pos, exists := index[key]
		if !exists {
			pos = len(points)
			index[key] = pos
			points = append(points, Point{Label: key.label})
		}
		points[pos].Value++
	}
	return points
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatValue prints whole numbers without decimals and everything else in
// its shortest exact form.
func FormatValue(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return strconv.Itoa(n)
	}
	return FormatInt(n/1000) + "," + leftPad3(n%1000)
}

func leftPad3(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
