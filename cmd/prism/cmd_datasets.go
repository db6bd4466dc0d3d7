package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spektr-org/prism/engine"
	"github.com/spektr-org/prism/internal/format"
	"github.com/spektr-org/prism/internal/store"
)

func newDatasetsCmd(opts *rootOptions) *cobra.Command {
	var outFormat string

	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the datasets stored in --db",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.cfg.Data.DB == "" {
				return errors.New("datasets needs --db")
			}
			st, err := store.Open(opts.cfg.Data.DB)
			if err != nil {
				return err
			}
			defer st.Close()

			sets, err := st.Datasets(cmd.Context())
			if err != nil {
				return err
			}

			mode, err := format.ParseMode(outFormat)
			if err != nil {
				return err
			}
			tb := format.NewTable(mode)
			tb.Header("Dataset", "Records", "Imported")
			tb.Align(2, "right")
			for _, ds := range sets {
				tb.Row(ds.Name, engine.FormatInt(ds.RecordCount), ds.ImportedAt.Format("2006-01-02 15:04:05"))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tb.String())
			return err
		},
	}

	cmd.Flags().StringVar(&outFormat, "format", "table", "Output format: table, markdown, csv")
	return cmd
}
