package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spektr-org/prism/engine"
	"github.com/spektr-org/prism/helpers"
	"github.com/spektr-org/prism/internal/logging"
	"github.com/spektr-org/prism/internal/store"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import [file...]",
		Short: "Import record files (or --url) into a SQLite dataset",
		Long: `Loads the given files, or --file/--url when none are given, and replaces the
dataset named by --dataset inside --db with the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := opts.cfg.Data
			if d.DB == "" {
				return errors.New("import needs --db")
			}
			if len(args) > 0 {
				d.Files = args
			}

			ctx := cmd.Context()
			var (
				view engine.RecordView
				err  error
			)
			switch {
			case len(d.Files) > 0:
				view, err = helpers.LoadFiles(ctx, d.Files...)
			case d.URL != "":
				var records []engine.Record
				if records, err = helpers.Fetch(ctx, d.URL); err == nil {
					view = engine.NewSliceView(records)
				}
			default:
				return errors.New("import needs record files or --url")
			}
			if err != nil {
				return err
			}

			st, err := store.Open(d.DB)
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Import(ctx, d.Dataset, engine.Materialize(view)); err != nil {
				return err
			}
			logging.New("import").Info("dataset imported", "db", d.DB, "dataset", d.Dataset, "records", view.Len())
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s records into %s#%s\n", engine.FormatInt(view.Len()), d.DB, d.Dataset)
			return err
		},
	}
}
