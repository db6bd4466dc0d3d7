package engine

import (
	"errors"
	"fmt"
)

// Request validation errors. They are raised while building a ChartRequest,
// never from inside an aggregation.
var (
	ErrEmptyField    = errors.New("field name is empty")
	ErrUnknownField  = errors.New("unknown field")
	ErrNotMeasure    = errors.New("field is not a measure")
	ErrIsMeasure     = errors.New("field is a measure")
	ErrNotSecondary  = errors.New("field cannot be used as a bar dimension")
	ErrNoRecordStore = errors.New("record store is not available")
)

// RequestError reports which part of a chart request was rejected.
type RequestError struct {
	Role  string // "dimension", "measure", "category", "variable", "filter"
	Field string
	Err   error
}

func (e *RequestError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s: %v", e.Role, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Role, e.Field, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

func requestError(role, field string, err error) *RequestError {
	return &RequestError{Role: role, Field: field, Err: err}
}
