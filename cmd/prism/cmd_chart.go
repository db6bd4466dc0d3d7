package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/spektr-org/prism/engine"
	"github.com/spektr-org/prism/internal/logging"
	"github.com/spektr-org/prism/internal/metrics"
)

func newChartCmd(opts *rootOptions) *cobra.Command {
	var (
		outFormat string
		outPath   string
		width     int
		height    int
	)

	cmd := &cobra.Command{
		Use:   "chart [variable] [filter]",
		Short: "Compute one chart from a variable/filter selection",
		Long: `Computes the chart for a selection and writes it to stdout or --out.

A measure variable (intensity, likelihood, relevance) draws one bar per record
labelled by the filter field. Any other variable draws its distribution and
the filter is ignored. Missing arguments fall back to the config defaults.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			variable, filter := opts.cfg.Defaults.Variable, opts.cfg.Defaults.Filter
			if len(args) > 0 {
				variable = args[0]
			}
			if len(args) > 1 {
				filter = args[1]
			}

			req, err := engine.FromSelection(variable, filter)
			if err != nil {
				metrics.ObserveRejected()
				return err
			}

			view, err := loadView(cmd.Context(), opts.cfg.Data)
			if err != nil {
				return err
			}

			start := time.Now()
			result, err := engine.Execute(req, view, engine.WithLogger(logging.New("chart")))
			if err != nil {
				return err
			}
			metrics.ObserveChart(result, time.Since(start))

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return writeResult(w, result, outFormat, width, height)
		},
	}

	cmd.Flags().StringVar(&outFormat, "format", "table", "Output format: table, markdown, csv, json, pretty, svg, text")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write output to this file instead of stdout")
	cmd.Flags().IntVar(&width, "width", 0, "Chart width, columns for text or pixels for svg (0 = default)")
	cmd.Flags().IntVar(&height, "height", 0, "SVG height in pixels (0 = default)")
	return cmd
}
