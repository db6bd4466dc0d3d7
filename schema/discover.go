package schema

import (
	"math"
	"sort"
)

// ============================================================================
// DISCOVERY — Profiles a loaded record store against the field registry
// ============================================================================
// Flow:
//   1. Caller scans every record and feeds each cell to Observe
//   2. Profile keeps per-field distinct labels, sentinel counts and ranges
//   3. Apply copies the findings onto a Config (usually Default())
//
// The profile never decides roles: roles come from the static registry.
// It only reports what the data looks like.
// ============================================================================

// MaxSamples bounds SampleValues per dimension.
const MaxSamples = 10

// Profile accumulates statistics for the fields of one record store.
// Not safe for concurrent use.
type Profile struct {
	records int
	fields  map[string]*fieldProfile
	order   []string
}

type fieldProfile struct {
	distinct map[string]bool
	missing  int
	min, max float64
	numeric  int
}

// NewProfile creates an empty profile.
func NewProfile() *Profile {
	return &Profile{fields: make(map[string]*fieldProfile)}
}

// AddRecord counts one scanned record.
func (p *Profile) AddRecord() { p.records++ }

// Observe records one cell. label is the grouping label, missing reports the
// empty-string sentinel, and num is the numeric reading used for measure ranges.
func (p *Profile) Observe(field, label string, missing bool, num float64) {
	fp, ok := p.fields[field]
	if !ok {
		fp = &fieldProfile{
			distinct: make(map[string]bool),
			min:      math.Inf(1),
			max:      math.Inf(-1),
		}
		p.fields[field] = fp
		p.order = append(p.order, field)
	}

	if missing {
		fp.missing++
		return
	}
	fp.distinct[label] = true
	fp.numeric++
	if num < fp.min {
		fp.min = num
	}
	if num > fp.max {
		fp.max = num
	}
}

// Records returns the number of records added.
func (p *Profile) Records() int { return p.records }

// Fields returns the observed field names in first-encountered order.
func (p *Profile) Fields() []string { return clone(p.order) }

// Unknown returns observed fields that are not in the registry.
func (p *Profile) Unknown() []string {
	var out []string
	for _, f := range p.order {
		if !IsKnown(f) {
			out = append(out, f)
		}
	}
	return out
}

// Apply returns a copy of base with sample-driven metadata filled in.
func (p *Profile) Apply(base Config) Config {
	cfg := base
	cfg.RecordCount = p.records

	cfg.Dimensions = make([]DimensionMeta, len(base.Dimensions))
	for i, d := range base.Dimensions {
		if fp, ok := p.fields[d.Key]; ok {
			d.Distinct = len(fp.distinct)
			d.MissingCount = fp.missing
			d.SampleValues = collectSamples(fp.distinct, MaxSamples)
			d.CardinalityHint = cardinalityHint(len(fp.distinct))
		}
		cfg.Dimensions[i] = d
	}

	cfg.Measures = make([]MeasureMeta, len(base.Measures))
	for i, m := range base.Measures {
		if fp, ok := p.fields[m.Key]; ok {
			m.MissingCount = fp.missing
			if fp.numeric > 0 {
				m.Min, m.Max = fp.min, fp.max
			}
		}
		cfg.Measures[i] = m
	}
	return cfg
}

func cardinalityHint(unique int) string {
	switch {
	case unique <= 10:
		return "low"
	case unique <= 100:
		return "medium"
	default:
		return "high"
	}
}

// collectSamples picks up to maxSamples values, sorted for deterministic output.
func collectSamples(uniqueSet map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}
	sort.Strings(samples)

	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}
