package schema

import "strings"

// ============================================================================
// SCHEMA — Describes the shape of the insights dataset
// ============================================================================
// Default() gives the static description of the eleven known fields.
// engine.Describe fills the sample-driven parts (samples, cardinality,
// missing counts, measure ranges) from a loaded record store.
// ============================================================================

// Config describes the complete shape of a dataset.
type Config struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Dimensions []DimensionMeta `json:"dimensions" yaml:"dimensions"`
	Measures   []MeasureMeta   `json:"measures" yaml:"measures"`

	RecordCount int `json:"recordCount,omitempty" yaml:"recordCount,omitempty"`
}

// DimensionMeta describes a categorical field used for grouping and labelling.
type DimensionMeta struct {
	Key             string   `json:"key" yaml:"key"`
	DisplayName     string   `json:"displayName" yaml:"displayName"`
	Description     string   `json:"description,omitempty" yaml:"description,omitempty"`
	SampleValues    []string `json:"sampleValues,omitempty" yaml:"sampleValues,omitempty"`
	Groupable       bool     `json:"groupable" yaml:"groupable"`
	Filterable      bool     `json:"filterable" yaml:"filterable"` // selectable as a bar dimension
	IsTemporal      bool     `json:"isTemporal,omitempty" yaml:"isTemporal,omitempty"`
	CardinalityHint string   `json:"cardinalityHint,omitempty" yaml:"cardinalityHint,omitempty"` // "low", "medium", "high"
	Distinct        int      `json:"distinct,omitempty" yaml:"distinct,omitempty"`
	MissingCount    int      `json:"missingCount,omitempty" yaml:"missingCount,omitempty"`
}

// MeasureMeta describes a numeric field used as bar height.
type MeasureMeta struct {
	Key          string  `json:"key" yaml:"key"`
	DisplayName  string  `json:"displayName" yaml:"displayName"`
	Description  string  `json:"description,omitempty" yaml:"description,omitempty"`
	Min          float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max          float64 `json:"max,omitempty" yaml:"max,omitempty"`
	MissingCount int     `json:"missingCount,omitempty" yaml:"missingCount,omitempty"`
}

var descriptions = map[string]string{
	Intensity:  "Strength of the insight",
	Likelihood: "How likely the insight is to materialise",
	Relevance:  "How relevant the insight is",
	StartYear:  "Year the insight starts applying",
	EndYear:    "Year the insight stops applying",
	Country:    "Country the insight concerns",
	Topic:      "Subject keyword",
	Region:     "World region",
	Sector:     "Industry sector",
	Pestle:     "PESTLE category",
	Source:     "Publisher of the insight",
}

// Default returns the static description of the insights dataset.
func Default() Config {
	cfg := Config{
		Name:        "Insights",
		Version:     "1.0",
		Description: "Analytical insights with intensity, likelihood and relevance scores",
	}
	for _, key := range dimensionFields {
		cfg.Dimensions = append(cfg.Dimensions, DimensionMeta{
			Key:         key,
			DisplayName: DisplayName(key),
			Description: descriptions[key],
			Groupable:   true,
			Filterable:  IsSecondary(key),
			IsTemporal:  key == StartYear || key == EndYear,
		})
	}
	for _, key := range measureFields {
		cfg.Measures = append(cfg.Measures, MeasureMeta{
			Key:         key,
			DisplayName: DisplayName(key),
			Description: descriptions[key],
		})
	}
	return cfg
}

// DisplayName turns a field key into a title: "start_year" → "Start Year".
func DisplayName(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// DimensionKeys returns all dimension keys.
func (c Config) DimensionKeys() []string {
	keys := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// MeasureKeys returns all measure keys.
func (c Config) MeasureKeys() []string {
	keys := make([]string, len(c.Measures))
	for i, m := range c.Measures {
		keys[i] = m.Key
	}
	return keys
}

// Dimension looks up a dimension by key.
func (c Config) Dimension(key string) (DimensionMeta, bool) {
	for _, d := range c.Dimensions {
		if d.Key == key {
			return d, true
		}
	}
	return DimensionMeta{}, false
}

// Measure looks up a measure by key.
func (c Config) Measure(key string) (MeasureMeta, bool) {
	for _, m := range c.Measures {
		if m.Key == key {
			return m, true
		}
	}
	return MeasureMeta{}, false
}
