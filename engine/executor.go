package engine

import (
	"fmt"
	"strings"
)

// ============================================================================
// EXECUTOR — Dispatcher
// ============================================================================
// Entry point: Execute(req, view, opts...)
//
// Pipeline:
//   1. Validate the request (reject before aggregating)
//   2. Dispatch to bar or distribution aggregation
//   3. Fill titles and axis labels
//   4. Return Result
//
// No I/O, no shared mutable state: concurrent calls are independent.
// Zero data copy: the engine reads consumer data through RecordView.
// ============================================================================

// Execute runs a ChartRequest against a RecordView and returns a render-ready Result.
// The only errors are request validation failures and a nil view.
func Execute(req ChartRequest, view RecordView, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)

	if req == nil {
		return nil, requestError("request", "", ErrEmptyField)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if view == nil {
		return nil, ErrNoRecordStore
	}

	result := &Result{Type: req.ChartType(), Request: req}

	switch r := req.(type) {
	case BarRequest:
		series := AggregateBar(view, r)
		result.Bar = &series
		result.Title = barTitle(r)
		result.XAxis = r.Dimension
		result.YAxis = r.Measure
		if r.CountMode() {
			result.YAxis = "Count"
		}
	case DistributionRequest:
		dist := AggregateDistribution(view, r)
		result.Distribution = &dist
		result.Title = strings.ToUpper(r.Category)
		result.XAxis = r.Category
		result.YAxis = "Count"
	default:
		return nil, fmt.Errorf("unsupported chart request %T", req)
	}

	result.Dropped = CountMissing(view, req.GoverningField())
	result.Eligible = view.Len() - result.Dropped

	cfg.Logger.Debug("chart computed",
		"type", result.Type,
		"field", req.GoverningField(),
		"records", view.Len(),
		"eligible", result.Eligible,
		"points", len(result.Points()),
	)

	return result, nil
}

// Run resolves a UI selection and executes it in one step.
func Run(variable, filter string, view RecordView, opts ...Option) (*Result, error) {
	req, err := FromSelection(variable, filter)
	if err != nil {
		return nil, err
	}
	return Execute(req, view, opts...)
}

func barTitle(r BarRequest) string {
	measure := r.Measure
	if r.CountMode() {
		measure = "count"
	}
	return strings.ToUpper(measure) + " for " + strings.ToUpper(r.Dimension)
}
