package engine

import "sort"

// ============================================================================
// FILTERS — Sentinel filtering via RecordView
// ============================================================================
// Single pass over the view: keeps every record whose governing field is
// not the empty-string sentinel. Returns a SubView (index list into parent)
// with no data copy.
// ============================================================================

// ExcludeMissing returns a view of the records whose field value is not the
// empty-string sentinel. Store order is preserved. When nothing is dropped
// the original view is returned.
func ExcludeMissing(view RecordView, field string) RecordView {
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !view.Value(i, field).IsMissing() {
			indices = append(indices, i)
		}
	}
	if len(indices) == n {
		return view
	}
	return newSubView(view, indices)
}

// CountMissing returns how many records carry the sentinel for field.
func CountMissing(view RecordView, field string) int {
	missing := 0
	for i := 0; i < view.Len(); i++ {
		if view.Value(i, field).IsMissing() {
			missing++
		}
	}
	return missing
}

func sortedKeys(r Record) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
