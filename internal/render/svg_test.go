package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spektr-org/prism/engine"
)

func execute(t *testing.T, req engine.ChartRequest, records ...engine.Record) *engine.Result {
	t.Helper()
	result, err := engine.Execute(req, engine.NewSliceView(records))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return result
}

func TestSVG_Bar(t *testing.T) {
	result := execute(t, engine.BarRequest{Dimension: "country", Measure: "intensity"},
		engine.Record{"country": engine.String("India"), "intensity": engine.Number(6)},
		engine.Record{"country": engine.String("India"), "intensity": engine.Number(3)},
		engine.Record{"country": engine.String("Chile"), "intensity": engine.Number(0)},
	)

	var buf bytes.Buffer
	if err := SVG(&buf, result, Options{Width: 640, Height: 400}); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "<svg") {
		t.Errorf("not an SVG document: %.80s", out)
	}
	if !strings.Contains(out, "INTENSITY for COUNTRY") || !strings.Contains(out, "Chile") {
		t.Errorf("title or labels missing")
	}
}

func TestSVG_BarAllZero(t *testing.T) {
	result := execute(t, engine.BarRequest{Dimension: "country"},
		engine.Record{"country": engine.String("India")},
	)
	result.Bar.Points[0].Value = 0

	var buf bytes.Buffer
	if err := SVG(&buf, result, Options{}); err != nil {
		t.Fatalf("SVG: %v", err)
	}
}

func TestSVG_EmptyBar(t *testing.T) {
	result := execute(t, engine.BarRequest{Dimension: "country", Measure: "intensity"})

	var buf bytes.Buffer
	if err := SVG(&buf, result, Options{}); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if !strings.Contains(buf.String(), "INTENSITY for COUNTRY") {
		t.Errorf("empty chart should keep its title: %s", buf.String())
	}
}

func TestSVG_PieLabelsLimited(t *testing.T) {
	var records []engine.Record
	for _, c := range []string{"A", "A", "B", "C", "D", "E", "F", "Gee"} {
		records = append(records, engine.Record{"pestle": engine.String(c)})
	}
	result := execute(t, engine.DistributionRequest{Category: "pestle"}, records...)

	var buf bytes.Buffer
	if err := SVG(&buf, result, Options{}); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Gee") {
		t.Error("slice beyond the labelled count should not be labelled")
	}
}

func TestSVG_Fallback(t *testing.T) {
	result := execute(t, engine.DistributionRequest{Category: "sector"},
		engine.Record{"sector": engine.Missing},
	)

	var buf bytes.Buffer
	if err := SVG(&buf, result, Options{}); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	if !strings.Contains(buf.String(), "Unknown sector") {
		t.Error("fallback slice label missing")
	}
}

func TestSVG_NilResult(t *testing.T) {
	if err := SVG(&bytes.Buffer{}, nil, Options{}); err == nil {
		t.Error("expected error for nil result")
	}
}
