package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ============================================================================
// VALUE — A single field value: string, number, or null
// ============================================================================
// The empty string is the one and only "missing" marker. Zero, null, and
// absent keys are ordinary data and are never filtered.
// ============================================================================

// Kind is the dynamic type of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
)

// Value holds one field value. The zero Value is null.
type Value struct {
	kind Kind
	str  string
	num  float64
}

// Missing is the empty-string sentinel.
var Missing = String("")

// String wraps a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number wraps a numeric value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Null returns the null value.
func Null() Value { return Value{} }

// Kind returns the dynamic type.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether v is the empty-string sentinel.
func (v Value) IsMissing() bool { return v.kind == KindString && v.str == "" }

// Label returns the presentable form used for chart labels and grouping.
func (v Value) Label() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		return "null"
	}
}

// Float returns the numeric reading of v. Numeric strings are parsed;
// anything else (including the sentinel and null) reads as 0.
func (v Value) Float() float64 {
	var f float64
	switch v.kind {
	case KindNumber:
		f = v.num
	case KindString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
		if err != nil {
			return 0
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Equal reports whether two values have the same kind and content.
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.str == o.str && v.num == o.num
}

func (v Value) String() string {
	if v.kind == KindString {
		return strconv.Quote(v.str)
	}
	return v.Label()
}

// MarshalJSON encodes strings as JSON strings, numbers as numbers, null as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts any JSON scalar. Booleans keep their literal text;
// nested objects and arrays are kept as compact JSON text so open-schema
// records still load.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty JSON value")
	}
	switch data[0] {
	case 'n':
		*v = Null()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
		return nil
	case 't', 'f':
		*v = String(string(data))
		return nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*v = String(buf.String())
		return nil
	}
	n, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid JSON number %q: %w", data, err)
	}
	*v = Number(n)
	return nil
}

// ParseCell reads a text cell (CSV, spreadsheet): empty → sentinel,
// numeric → number, anything else → string kept as written. Surrounding
// space is ignored only when reading numbers, so "  " is data as in JSON.
func ParseCell(s string) Value {
	if s == "" {
		return Missing
	}
	if t := strings.TrimSpace(s); t != "" {
		if f, err := strconv.ParseFloat(t, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return Number(f)
		}
	}
	return String(s)
}

// ============================================================================
// RECORD
// ============================================================================

// Record is one flat row: field name → value. Unknown fields are tolerated.
type Record map[string]Value

// Get returns the value for field, or null when the key is absent.
func (r Record) Get(field string) Value {
	return r[field]
}
