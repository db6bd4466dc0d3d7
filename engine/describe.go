package engine

import "github.com/spektr-org/prism/schema"

// Describe profiles every record in view and returns schema.Default()
// annotated with samples, cardinality, sentinel counts and measure ranges.
func Describe(view RecordView) schema.Config {
	profile := schema.NewProfile()
	if view == nil {
		return profile.Apply(schema.Default())
	}

	fields := view.Fields()
	for i := 0; i < view.Len(); i++ {
		profile.AddRecord()
		for _, f := range fields {
			v := view.Value(i, f)
			profile.Observe(f, v.Label(), v.IsMissing(), v.Float())
		}
	}
	return profile.Apply(schema.Default())
}
