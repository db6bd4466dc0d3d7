package engine

import "github.com/spektr-org/prism/schema"

// ============================================================================
// CHART REQUEST — Explicit, validated selection handed to the engine
// ============================================================================
// A request is built once per selection change at the UI boundary and
// validated there. The aggregations trust a validated request and have no
// error paths of their own.
// ============================================================================

// ChartRequest is either a BarRequest or a DistributionRequest.
type ChartRequest interface {
	// Validate checks the request against the field registry.
	Validate() error
	// ChartType names the result variant the request produces.
	ChartType() ChartType
	// GoverningField is the field whose sentinel values exclude a record.
	GoverningField() string

	isChartRequest()
}

// BarRequest asks for one bar per record (measure set) or one bar per
// distinct dimension value with record counts (measure empty).
type BarRequest struct {
	Dimension string `json:"dimension"`
	Measure   string `json:"measure,omitempty"`
}

// NewBarRequest builds a validated measure bar request.
func NewBarRequest(dimension, measure string) (BarRequest, error) {
	req := BarRequest{Dimension: dimension, Measure: measure}
	if measure == "" {
		return BarRequest{}, requestError("measure", "", ErrEmptyField)
	}
	if err := req.Validate(); err != nil {
		return BarRequest{}, err
	}
	return req, nil
}

// NewCountRequest builds a validated count-rollup bar request.
func NewCountRequest(dimension string) (BarRequest, error) {
	req := BarRequest{Dimension: dimension}
	if err := req.Validate(); err != nil {
		return BarRequest{}, err
	}
	return req, nil
}

// Validate requires a dimension and, when a measure is given, a registered measure.
func (r BarRequest) Validate() error {
	if r.Dimension == "" {
		return requestError("dimension", "", ErrEmptyField)
	}
	if r.Measure != "" && !schema.IsMeasure(r.Measure) {
		return requestError("measure", r.Measure, ErrNotMeasure)
	}
	return nil
}

// CountMode reports whether the request rolls records up into counts.
func (r BarRequest) CountMode() bool { return r.Measure == "" }

func (r BarRequest) ChartType() ChartType { return ChartBar }

func (r BarRequest) GoverningField() string { return r.Dimension }

func (BarRequest) isChartRequest() {}

// DistributionRequest asks for the ranked category counts of one field.
type DistributionRequest struct {
	Category string `json:"category"`
}

// NewDistributionRequest builds a validated distribution request.
func NewDistributionRequest(category string) (DistributionRequest, error) {
	req := DistributionRequest{Category: category}
	if err := req.Validate(); err != nil {
		return DistributionRequest{}, err
	}
	return req, nil
}

// Validate requires a category that is not a measure.
func (r DistributionRequest) Validate() error {
	if r.Category == "" {
		return requestError("category", "", ErrEmptyField)
	}
	if schema.IsMeasure(r.Category) {
		return requestError("category", r.Category, ErrIsMeasure)
	}
	return nil
}

func (r DistributionRequest) ChartType() ChartType { return ChartDistribution }

func (r DistributionRequest) GoverningField() string { return r.Category }

func (DistributionRequest) isChartRequest() {}

// ============================================================================
// DISPATCH — UI selection → request
// ============================================================================

// FromSelection maps the two UI selections onto exactly one request.
// A measure analysis field produces a bar chart over the secondary field;
// any other known field produces a distribution of itself, and the
// secondary field is ignored.
func FromSelection(variable, filter string) (ChartRequest, error) {
	if variable == "" {
		return nil, requestError("variable", "", ErrEmptyField)
	}
	role, ok := schema.Classify(variable)
	if !ok {
		return nil, requestError("variable", variable, ErrUnknownField)
	}
	if role == schema.RoleMeasure {
		if filter == "" {
			return nil, requestError("filter", "", ErrEmptyField)
		}
		if !schema.IsSecondary(filter) {
			return nil, requestError("filter", filter, ErrNotSecondary)
		}
		req, err := NewBarRequest(filter, variable)
		if err != nil {
			return nil, err
		}
		return req, nil
	}
	req, err := NewDistributionRequest(variable)
	if err != nil {
		return nil, err
	}
	return req, nil
}
