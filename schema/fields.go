package schema

// ============================================================================
// FIELD CLASSIFICATION — Static registry of the known insight fields
// ============================================================================
// Every known field is either a Measure (numeric, drives bar height) or a
// Dimension (categorical, groups and labels records). The dispatcher uses
// the role of the selected analysis field to choose bar vs distribution.
// ============================================================================

// Role classifies a field for aggregation.
type Role int

const (
	RoleDimension Role = iota
	RoleMeasure
)

func (r Role) String() string {
	if r == RoleMeasure {
		return "measure"
	}
	return "dimension"
}

// MarshalText lets roles travel as "measure"/"dimension" in JSON and YAML.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Known field names.
const (
	Intensity  = "intensity"
	Likelihood = "likelihood"
	Relevance  = "relevance"
	StartYear  = "start_year"
	EndYear    = "end_year"
	Country    = "country"
	Topic      = "topic"
	Region     = "region"
	Sector     = "sector"
	Pestle     = "pestle"
	Source     = "source"
)

var (
	measureFields   = []string{Intensity, Likelihood, Relevance}
	dimensionFields = []string{StartYear, EndYear, Country, Topic, Region, Sector, Pestle, Source}

	// source can be analysed on its own but is never offered as a bar axis.
	secondaryFields = []string{StartYear, EndYear, Country, Topic, Region, Sector, Pestle}
)

var registry = func() map[string]Role {
	m := make(map[string]Role, len(measureFields)+len(dimensionFields))
	for _, f := range measureFields {
		m[f] = RoleMeasure
	}
	for _, f := range dimensionFields {
		m[f] = RoleDimension
	}
	return m
}()

// Classify returns the role of a known field. ok is false for unknown fields.
func Classify(field string) (role Role, ok bool) {
	role, ok = registry[field]
	return role, ok
}

// IsMeasure reports whether field is one of the registered measures.
func IsMeasure(field string) bool {
	role, ok := registry[field]
	return ok && role == RoleMeasure
}

// IsKnown reports whether field is in the registry.
func IsKnown(field string) bool {
	_, ok := registry[field]
	return ok
}

// IsSecondary reports whether field may be selected as a bar dimension.
func IsSecondary(field string) bool {
	for _, f := range secondaryFields {
		if f == field {
			return true
		}
	}
	return false
}

// MeasureFields returns the measure names in display order.
func MeasureFields() []string { return clone(measureFields) }

// DimensionFields returns the dimension names in display order.
func DimensionFields() []string { return clone(dimensionFields) }

// SecondaryFields returns the fields selectable as a bar dimension.
func SecondaryFields() []string { return clone(secondaryFields) }

// AnalysisFields returns every selectable analysis field: measures first, then dimensions.
func AnalysisFields() []string {
	out := make([]string, 0, len(measureFields)+len(dimensionFields))
	out = append(out, measureFields...)
	return append(out, dimensionFields...)
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
