package engine

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================================
// EXECUTOR TESTS
// ============================================================================
// Tests cover:
//   1. Rejection: nil request, invalid request, nil view
//   2. Titles and axes for bar, count and distribution results
//   3. Eligible / dropped bookkeeping
//   4. Run: selection → result in one call
//   5. Concurrent Execute on a shared view
// ============================================================================

func TestExecute_RejectsBeforeAggregating(t *testing.T) {
	view := exampleView()

	if _, err := Execute(nil, view); !errors.Is(err, ErrEmptyField) {
		t.Errorf("nil request: error = %v, want ErrEmptyField", err)
	}

	_, err := Execute(BarRequest{Dimension: "country", Measure: "topic"}, view)
	if !errors.Is(err, ErrNotMeasure) {
		t.Errorf("non-measure: error = %v, want ErrNotMeasure", err)
	}

	_, err = Execute(DistributionRequest{Category: "intensity"}, view)
	if !errors.Is(err, ErrIsMeasure) {
		t.Errorf("measure category: error = %v, want ErrIsMeasure", err)
	}

	_, err = Execute(DistributionRequest{Category: "country"}, nil)
	if !errors.Is(err, ErrNoRecordStore) {
		t.Errorf("nil view: error = %v, want ErrNoRecordStore", err)
	}
}

func TestExecute_BarTitles(t *testing.T) {
	tests := []struct {
		req       BarRequest
		wantTitle string
		wantY     string
	}{
		{BarRequest{Dimension: "country", Measure: "intensity"}, "INTENSITY for COUNTRY", "intensity"},
		{BarRequest{Dimension: "country"}, "COUNT for COUNTRY", "Count"},
	}
	for _, tt := range tests {
		result, err := Execute(tt.req, exampleView())
		if err != nil {
			t.Fatalf("%+v: unexpected error: %v", tt.req, err)
		}
		if result.Type != ChartBar {
			t.Errorf("Type = %q, want bar", result.Type)
		}
		if result.Title != tt.wantTitle {
			t.Errorf("Title = %q, want %q", result.Title, tt.wantTitle)
		}
		if result.XAxis != "country" || result.YAxis != tt.wantY {
			t.Errorf("axes = %q/%q, want country/%q", result.XAxis, result.YAxis, tt.wantY)
		}
		if result.Distribution != nil {
			t.Error("bar result should not carry a distribution")
		}
	}
}

func TestExecute_Distribution(t *testing.T) {
	result, err := Execute(DistributionRequest{Category: "country"}, exampleView())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Title != "COUNTRY" {
		t.Errorf("Title = %q, want COUNTRY", result.Title)
	}
	if result.Eligible != 2 || result.Dropped != 1 {
		t.Errorf("eligible/dropped = %d/%d, want 2/1", result.Eligible, result.Dropped)
	}
	want := []Point{{Label: "A", Value: 2}}
	if diff := cmp.Diff(want, result.Points()); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
	if result.Total() != 2 {
		t.Errorf("Total = %v, want 2", result.Total())
	}
}

func TestExecute_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if _, err := Execute(DistributionRequest{Category: "country"}, exampleView(), WithLogger(logger)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "chart computed") || !strings.Contains(buf.String(), "eligible=2") {
		t.Errorf("unexpected log output: %s", buf.String())
	}
}

func TestRun(t *testing.T) {
	result, err := Run("intensity", "country", exampleView())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Bar == nil || len(result.Bar.Points) != 2 {
		t.Fatalf("expected 2 bar points, got %+v", result.Bar)
	}

	result, err = Run("country", "topic", exampleView())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Type != ChartDistribution {
		t.Errorf("Type = %q, want distribution", result.Type)
	}

	if _, err := Run("intensity", "", exampleView()); !errors.Is(err, ErrEmptyField) {
		t.Errorf("error = %v, want ErrEmptyField", err)
	}
}

func TestExecute_ConcurrentCallsShareView(t *testing.T) {
	countries := make([]string, 200)
	for i := range countries {
		countries[i] = string(rune('A' + i%7))
	}
	view := countryView(countries...)

	want, err := Execute(DistributionRequest{Category: "country"}, view)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Execute(DistributionRequest{Category: "country"}, view)
			if err != nil {
				errs <- err.Error()
				return
			}
			if diff := cmp.Diff(want.Distribution, got.Distribution); diff != "" {
				errs <- diff
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
