package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/prism/engine"
	"github.com/spektr-org/prism/internal/format"
	"github.com/spektr-org/prism/schema"
)

func newFieldsCmd(opts *rootOptions) *cobra.Command {
	var outFormat string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the analysis fields, profiled against the record store when one is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile := schema.Default()
			if opts.cfg.Data.HasSource() {
				view, err := loadView(cmd.Context(), opts.cfg.Data)
				if err != nil {
					return err
				}
				profile = engine.Describe(view)
			}

			if outFormat == "json" || outFormat == "pretty" {
				return writeJSON(cmd.OutOrStdout(), profile, outFormat)
			}
			mode, err := format.ParseMode(outFormat)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderProfile(profile, mode))
			return err
		},
	}

	cmd.Flags().StringVar(&outFormat, "format", "table", "Output format: table, markdown, csv, json, pretty")
	return cmd
}

// renderProfile lays out one row per field: measures first, then dimensions.
func renderProfile(cfg schema.Config, mode format.Mode) string {
	tb := format.NewTable(mode)
	tb.Header("Field", "Role", "Secondary", "Distinct", "Missing", "Range / Samples")
	tb.Align(4, "right")
	tb.Align(5, "right")

	for _, m := range cfg.Measures {
		span := ""
		if cfg.RecordCount > 0 {
			span = engine.FormatValue(m.Min) + " to " + engine.FormatValue(m.Max)
		}
		tb.Row(m.Key, schema.RoleMeasure.String(), "", "", m.MissingCount, span)
	}
	for _, d := range cfg.Dimensions {
		secondary := ""
		if d.Filterable {
			secondary = "yes"
		}
		distinct := ""
		if d.CardinalityHint != "" {
			distinct = fmt.Sprintf("%d (%s)", d.Distinct, d.CardinalityHint)
		}
		tb.Row(d.Key, schema.RoleDimension.String(), secondary, distinct, d.MissingCount, strings.Join(d.SampleValues, ", "))
	}

	if cfg.RecordCount > 0 {
		tb.Footer("", "", "", "", "", engine.FormatInt(cfg.RecordCount)+" records")
	}
	return tb.String()
}
