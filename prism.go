// Package prism is an insights dashboard backend: a record store of analytical
// insights, and the charts a user can draw from it by picking a variable and,
// for measures, a secondary filter field.
//
// Usage:
//
//	import "github.com/spektr-org/prism/engine"
//
//	view, _ := helpers.LoadFiles(ctx, "jsondata.json")
//	result, err := engine.Run("intensity", "country", view)
//	chart := engine.BuildChart(result)
//
// A measure variable (intensity, likelihood, relevance) yields one bar per
// record labelled by the filter field. Any other field yields a distribution
// of its values. Records whose governing field is the empty string are left
// out; every other value, zero and null included, is data.
//
// The engine never calls any external service; all computation is local.
// Loading (helpers), persistence (internal/store) and the HTTP, CLI and
// terminal front ends (internal/server, cmd/prism, internal/tui) sit on top.
package prism
