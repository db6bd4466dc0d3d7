// Package tui provides the Bubble Tea dashboard for prism.
package tui

import "github.com/spektr-org/prism/engine"

// StoreLoaded is sent when the record store is available.
type StoreLoaded struct {
	View engine.RecordView
	Err  error
}

// ChartComputed carries the result of one chart request. Generation is the
// selection counter at the time the request was issued.
type ChartComputed struct {
	Generation int
	Result     *engine.Result
	Err        error
}
