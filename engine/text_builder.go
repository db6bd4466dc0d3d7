package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// TEXT BUILDER — One-line summaries for text output
// ============================================================================

// Summarize describes a Result in one line.
func Summarize(result *Result) string {
	if result == nil {
		return "No result."
	}

	switch {
	case result.Distribution != nil:
		return summarizeDistribution(result)
	case result.Bar != nil:
		return summarizeBar(result)
	}
	return "No result."
}

func summarizeDistribution(result *Result) string {
	dist := result.Distribution
	if dist.Fallback {
		return fmt.Sprintf("No %s values in %s records; showing %q.",
			dist.Category, FormatInt(result.Eligible+result.Dropped), dist.Slices[0].Label)
	}

	top := dist.Slices[:dist.LabeledCount]
	names := make([]string, 0, len(top))
	for _, s := range top {
		names = append(names, fmt.Sprintf("%s (%s)", s.Label, FormatValue(s.Value)))
	}
	return fmt.Sprintf("%s records across %s %s values. Top: %s.",
		FormatInt(result.Eligible), FormatInt(len(dist.Slices)), dist.Category, strings.Join(names, ", "))
}

func summarizeBar(result *Result) string {
	bar := result.Bar
	if len(bar.Points) == 0 {
		return fmt.Sprintf("No records with a %s value.", bar.Dimension)
	}
	if bar.Measure == "" {
		return fmt.Sprintf("%s records counted into %s %s groups.",
			FormatInt(result.Eligible), FormatInt(len(bar.Points)), bar.Dimension)
	}

	peak := bar.Points[0]
	for _, p := range bar.Points[1:] {
		if p.Value > peak.Value {
			peak = p
		}
	}
	return fmt.Sprintf("%s %s bars by %s; highest %s at %s.",
		FormatInt(len(bar.Points)), bar.Measure, bar.Dimension, FormatValue(peak.Value), peak.Label)
}
