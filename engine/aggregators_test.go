package engine

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================================
// FIXTURES
// ============================================================================

// rec builds a Record from field/value pairs. Strings become string values,
// ints and floats become numbers, nil becomes null.
func rec(kv ...any) Record {
	r := make(Record, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key := kv[i].(string)
		switch v := kv[i+1].(type) {
		case string:
			r[key] = String(v)
		case int:
			r[key] = Number(float64(v))
		case float64:
			r[key] = Number(v)
		case nil:
			r[key] = Null()
		default:
			panic(fmt.Sprintf("rec: unsupported value %T", v))
		}
	}
	return r
}

func exampleView() RecordView {
	return NewSliceView([]Record{
		rec("country", "A", "intensity", 5),
		rec("country", "", "intensity", 9),
		rec("country", "A", "intensity", 3),
	})
}

func countryView(countries ...string) RecordView {
	records := make([]Record, len(countries))
	for i, c := range countries {
		records[i] = rec("country", c, "intensity", i)
	}
	return NewSliceView(records)
}

// ============================================================================
// BAR AGGREGATION
// ============================================================================

func TestAggregateBar_DropsSentinelKeepsOrder(t *testing.T) {
	got := AggregateBar(exampleView(), BarRequest{Dimension: "country", Measure: "intensity"})

	want := []Point{{Label: "A", Value: 5}, {Label: "A", Value: 3}}
	if diff := cmp.Diff(want, got.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateBar_NoGroupingWithMeasure(t *testing.T) {
	view := NewSliceView([]Record{
		rec("region", "x", "relevance", 1),
		rec("region", "x", "relevance", 2),
		rec("region", "x", "relevance", 3),
	})

	got := AggregateBar(view, BarRequest{Dimension: "region", Measure: "relevance"})
	if len(got.Points) != 3 {
		t.Fatalf("expected 3 points, got %d: %v", len(got.Points), got.Points)
	}
	for i, p := range got.Points {
		if p.Label != "x" {
			t.Errorf("point %d label = %q, want %q", i, p.Label, "x")
		}
	}
}

func TestAggregateBar_CountRollup(t *testing.T) {
	view := countryView("x", "y", "", "x", "z", "y", "x")

	got := AggregateBar(view, BarRequest{Dimension: "country"})

	want := []Point{{Label: "x", Value: 3}, {Label: "y", Value: 2}, {Label: "z", Value: 1}}
	if diff := cmp.Diff(want, got.Points); diff != "" {
		t.Errorf("count rollup mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateBar_EmptyStoreHasNoFallback(t *testing.T) {
	for name, view := range map[string]RecordView{
		"empty store":  NewSliceView(nil),
		"all sentinel": countryView("", "", ""),
	} {
		t.Run(name, func(t *testing.T) {
			got := AggregateBar(view, BarRequest{Dimension: "country", Measure: "intensity"})
			if got.Points == nil {
				t.Fatal("points should be an empty slice, not nil")
			}
			if len(got.Points) != 0 {
				t.Errorf("expected no points, got %v", got.Points)
			}
		})
	}
}

func TestAggregateBar_MissingMeasureReadsZero(t *testing.T) {
	view := NewSliceView([]Record{
		rec("country", "A", "intensity", ""),
		rec("country", "B", "intensity", "7"),
		rec("country", "C"),
	})

	got := AggregateBar(view, BarRequest{Dimension: "country", Measure: "intensity"})

	want := []Point{{Label: "A", Value: 0}, {Label: "B", Value: 7}, {Label: "C", Value: 0}}
	if diff := cmp.Diff(want, got.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateBar_NegativeMeasurePassesThrough(t *testing.T) {
	view := NewSliceView([]Record{
		rec("country", "A", "intensity", -4),
		rec("country", "B", "intensity", 2),
	})

	got := AggregateBar(view, BarRequest{Dimension: "country", Measure: "intensity"})

	want := []Point{{Label: "A", Value: -4}, {Label: "B", Value: 2}}
	if diff := cmp.Diff(want, got.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateBar_NumericDimensionLabels(t *testing.T) {
	view := NewSliceView([]Record{
		rec("start_year", 2017, "likelihood", 3),
		rec("start_year", "", "likelihood", 2),
		rec("start_year", 2016.5, "likelihood", 1),
	})

	got := AggregateBar(view, BarRequest{Dimension: "start_year", Measure: "likelihood"})

	want := []Point{{Label: "2017", Value: 3}, {Label: "2016.5", Value: 1}}
	if diff := cmp.Diff(want, got.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// DISTRIBUTION AGGREGATION
// ============================================================================

func TestAggregateDistribution_Example(t *testing.T) {
	got := AggregateDistribution(exampleView(), DistributionRequest{Category: "country"})

	want := Distribution{
		Category:     "country",
		Slices:       []Point{{Label: "A", Value: 2}},
		LabeledCount: 1,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("distribution mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateDistribution_Fallback(t *testing.T) {
	for name, view := range map[string]RecordView{
		"empty store":  NewSliceView(nil),
		"all sentinel": countryView("", ""),
	} {
		t.Run(name, func(t *testing.T) {
			got := AggregateDistribution(view, DistributionRequest{Category: "country"})

			want := Distribution{
				Category:     "country",
				Slices:       []Point{{Label: "Unknown country", Value: 1}},
				LabeledCount: 1,
				Fallback:     true,
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("fallback mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAggregateDistribution_StableTies(t *testing.T) {
	// C appears first but ranks last; A's first record precedes B's.
	view := countryView("C", "A", "B", "A", "", "B")

	got := AggregateDistribution(view, DistributionRequest{Category: "country"})

	want := []Point{{Label: "A", Value: 2}, {Label: "B", Value: 2}, {Label: "C", Value: 1}}
	if diff := cmp.Diff(want, got.Slices); diff != "" {
		t.Errorf("slice order mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateDistribution_SumConservation(t *testing.T) {
	countries := []string{"A", "", "B", "C", "A", "", "D", "B", "A", "E", "F", "G"}
	view := countryView(countries...)

	got := AggregateDistribution(view, DistributionRequest{Category: "country"})
	if got.Fallback {
		t.Fatal("fallback should not fire")
	}

	var sum float64
	for _, s := range got.Slices {
		sum += s.Value
	}
	eligible := view.Len() - CountMissing(view, "country")
	if sum != float64(eligible) {
		t.Errorf("sum of slices = %v, want %d", sum, eligible)
	}
	for i := 1; i < len(got.Slices); i++ {
		if got.Slices[i].Value > got.Slices[i-1].Value {
			t.Errorf("slices not descending at %d: %v", i, got.Slices)
		}
	}
}

func TestAggregateDistribution_LabeledCountCap(t *testing.T) {
	tests := []struct {
		countries []string
		want      int
	}{
		{[]string{"A"}, 1},
		{[]string{"A", "B", "C"}, 3},
		{[]string{"A", "B", "C", "D", "E"}, 5},
		{[]string{"A", "B", "C", "D", "E", "F", "G"}, 5},
	}
	for _, tt := range tests {
		got := AggregateDistribution(countryView(tt.countries...), DistributionRequest{Category: "country"})
		if got.LabeledCount != tt.want {
			t.Errorf("%d slices: LabeledCount = %d, want %d", len(got.Slices), got.LabeledCount, tt.want)
		}
	}
}

func TestAggregateDistribution_ZeroAndNullAreData(t *testing.T) {
	view := NewSliceView([]Record{
		rec("end_year", 0),
		rec("end_year", nil),
		rec("end_year", ""),
		rec("end_year", 0),
		rec("topic", "oil"),
	})

	got := AggregateDistribution(view, DistributionRequest{Category: "end_year"})

	want := []Point{{Label: "0", Value: 2}, {Label: "null", Value: 2}}
	if diff := cmp.Diff(want, got.Slices); diff != "" {
		t.Errorf("slices mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateDistribution_GroupsByKindAndLabel(t *testing.T) {
	view := NewSliceView([]Record{
		rec("topic", "null"),
		rec("topic", nil),
		rec("start_year", 2017),
		rec("topic", 2017),
		rec("topic", "2017"),
		rec("topic", "null"),
	})

	got := AggregateDistribution(view, DistributionRequest{Category: "topic"})

	// null and the absent key are one value; the strings stay apart.
	want := []Point{
		{Label: "null", Value: 2},
		{Label: "null", Value: 2},
		{Label: "2017", Value: 1},
		{Label: "2017", Value: 1},
	}
	if diff := cmp.Diff(want, got.Slices); diff != "" {
		t.Errorf("slices mismatch (-want +got):\n%s", diff)
	}
	if got.LabeledCount != 4 {
		t.Errorf("LabeledCount = %d, want 4", got.LabeledCount)
	}
}

func TestAggregateDistribution_NeverReadsOtherFields(t *testing.T) {
	view := NewSliceView([]Record{
		rec("pestle", "Economic", "country", ""),
		rec("pestle", "Political", "country", ""),
		rec("pestle", "Economic", "country", "India"),
	})

	got := AggregateDistribution(view, DistributionRequest{Category: "pestle"})

	want := []Point{{Label: "Economic", Value: 2}, {Label: "Political", Value: 1}}
	if diff := cmp.Diff(want, got.Slices); diff != "" {
		t.Errorf("slices mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================================
// RANKING + FORMATTING
// ============================================================================

func TestRankSlices_Stable(t *testing.T) {
	points := []Point{{"a", 1}, {"b", 3}, {"c", 1}, {"d", 3}, {"e", 2}}
	RankSlices(points)

	want := []Point{{"b", 3}, {"d", 3}, {"e", 2}, {"a", 1}, {"c", 1}}
	if diff := cmp.Diff(want, points); diff != "" {
		t.Errorf("rank mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatValue(t *testing.T) {
	tests := map[float64]string{
		0:      "0",
		12:     "12",
		2.5:    "2.5",
		1.0625: "1.0625",
	}
	for in, want := range tests {
		if got := FormatValue(in); got != want {
			t.Errorf("FormatValue(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatInt(t *testing.T) {
	tests := map[int]string{
		0:       "0",
		999:     "999",
		1000:    "1,000",
		1001:    "1,001",
		1234567: "1,234,567",
		-4500:   "-4,500",
	}
	for in, want := range tests {
		if got := FormatInt(in); got != want {
			t.Errorf("FormatInt(%d) = %q, want %q", in, got, want)
		}
	}
}
