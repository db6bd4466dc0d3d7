package engine

// ============================================================================
// RECORD VIEW — Zero-Copy Data Access Interface
// ============================================================================
// The engine never owns or mutates consumer data. It reads through this
// interface.
//
// Implementations:
//   SliceView      wraps []Record (JSON, CSV, XLSX, SQLite loads)
//   DomainView[T]  reads typed structs via accessor functions (zero-copy)
//   SubView        filtered subset (indices into parent, zero-copy)
//   ConcatView     virtual concatenation of several views, in order
// ============================================================================

// RecordView provides indexed, read-only access to a record store.
// The engine calls Value in tight loops; keep implementations fast.
type RecordView interface {
	Len() int
	Value(index int, field string) Value
	Fields() []string // field names seen, first-encountered order
}

// ============================================================================
// SLICE VIEW — wraps []Record
// ============================================================================

// SliceView wraps a []Record slice as a RecordView.
type SliceView struct {
	records []Record
	fields  []string
}

// NewSliceView creates a RecordView from a []Record slice.
// Field names are collected in first-encountered order, keys sorted per record.
func NewSliceView(records []Record) RecordView {
	v := &SliceView{records: records}
	v.cacheFields()
	return v
}

func (v *SliceView) cacheFields() {
	seen := make(map[string]bool)
	for _, r := range v.records {
		for _, k := range sortedKeys(r) {
			if !seen[k] {
				seen[k] = true
				v.fields = append(v.fields, k)
			}
		}
	}
}

func (v *SliceView) Len() int { return len(v.records) }

func (v *SliceView) Value(i int, field string) Value {
	if i < 0 || i >= len(v.records) {
		return Null()
	}
	return v.records[i].Get(field)
}

func (v *SliceView) Fields() []string { return v.fields }

// Materialize copies every record of view into a Record holding all of the
// view's fields. Keys a record never had come back as Null.
func Materialize(view RecordView) []Record {
	if view == nil {
		return nil
	}
	fields := view.Fields()
	out := make([]Record, view.Len())
	for i := range out {
		rec := make(Record, len(fields))
		for _, f := range fields {
			rec[f] = view.Value(i, f)
		}
		out[i] = rec
	}
	return out
}

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent RecordView.
// Holds indices into the parent, no data copy.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Value(i int, field string) Value {
	if i < 0 || i >= len(v.indices) {
		return Null()
	}
	return v.parent.Value(v.indices[i], field)
}

func (v *SubView) Fields() []string { return v.parent.Fields() }

// ============================================================================
// CONCAT VIEW — virtual concatenation
// ============================================================================

// ConcatView logically concatenates RecordViews in the given order.
// Used when a record store is assembled from several files.
type ConcatView struct {
	parts  []RecordView
	total  int
	fields []string
}

// NewConcatView joins views without copying. A single view is returned as is.
func NewConcatView(views ...RecordView) RecordView {
	if len(views) == 1 {
		return views[0]
	}
	v := &ConcatView{parts: views}
	seen := make(map[string]bool)
	for _, p := range views {
		v.total += p.Len()
		for _, f := range p.Fields() {
			if !seen[f] {
				seen[f] = true
				v.fields = append(v.fields, f)
			}
		}
	}
	return v
}

func (v *ConcatView) Len() int { return v.total }

func (v *ConcatView) Value(i int, field string) Value {
	if i < 0 {
		return Null()
	}
	for _, p := range v.parts {
		if i < p.Len() {
			return p.Value(i, field)
		}
		i -= p.Len()
	}
	return Null()
}

func (v *ConcatView) Fields() []string { return v.fields }

// ============================================================================
// DOMAIN ADAPTER — Zero-copy typed struct access
// ============================================================================
//
// Usage:
//
//	adapter := engine.NewDomainAdapter[Insight]().
//	    Field("country", func(in Insight) engine.Value { return engine.String(in.Country) }).
//	    Field("intensity", func(in Insight) engine.Value { return engine.Number(in.Intensity) })
//
//	view := adapter.Bind(insights)
//	result, _ := engine.Execute(req, view)
//
// ============================================================================

// DomainAdapter builds a RecordView from typed structs.
// Declare once, bind many times.
type DomainAdapter[T any] struct {
	order  []string
	fields map[string]func(T) Value
}

// NewDomainAdapter creates a new adapter for type T.
func NewDomainAdapter[T any]() *DomainAdapter[T] {
	return &DomainAdapter[T]{fields: make(map[string]func(T) Value)}
}

// Field registers a field accessor.
func (a *DomainAdapter[T]) Field(key string, fn func(T) Value) *DomainAdapter[T] {
	if _, exists := a.fields[key]; !exists {
		a.order = append(a.order, key)
	}
	a.fields[key] = fn
	return a
}

// Bind creates a RecordView from a data slice. Zero-copy: holds the reference.
func (a *DomainAdapter[T]) Bind(data []T) RecordView {
	return &DomainView[T]{data: data, fields: a.fields, keys: a.order}
}

// DomainView reads typed struct fields via registered accessor functions.
type DomainView[T any] struct {
	data   []T
	fields map[string]func(T) Value
	keys   []string
}

func (v *DomainView[T]) Len() int { return len(v.data) }

func (v *DomainView[T]) Value(i int, field string) Value {
	if i < 0 || i >= len(v.data) {
		return Null()
	}
	if fn, ok := v.fields[field]; ok {
		return fn(v.data[i])
	}
	return Null()
}

func (v *DomainView[T]) Fields() []string { return v.keys }
