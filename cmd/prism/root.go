package main

import (
	"github.com/spf13/cobra"

	"github.com/spektr-org/prism/helpers"
	"github.com/spektr-org/prism/internal/config"
	"github.com/spektr-org/prism/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

// rootOptions holds the persistent flags and the configuration resolved from
// them before any subcommand runs.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	files   []string
	db      string
	dataset string
	url     string

	cfg config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "prism",
		Short: "Interactive charts over an insights record store",
		Long: "Prism loads insight records (JSON, CSV, XLSX, SQLite or HTTP) and turns a\n" +
			"variable/filter selection into a bar chart or a distribution.",
		Version:      version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to prism.yaml")
	pf.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "Log format: text, json, pretty")
	pf.StringArrayVarP(&opts.files, "file", "f", nil, "Record file (.json, .csv, .xlsx); repeatable")
	pf.StringVar(&opts.db, "db", "", "SQLite database holding imported datasets")
	pf.StringVar(&opts.dataset, "dataset", "", "Dataset name inside --db (default \"insights\")")
	pf.StringVar(&opts.url, "url", "", "HTTP URL serving a JSON record array")

	cmd.AddCommand(
		newChartCmd(opts),
		newFieldsCmd(opts),
		newImportCmd(opts),
		newDatasetsCmd(opts),
		newServeCmd(opts),
		newTUICmd(opts),
	)
	return cmd
}

// resolve loads the config file, overlays any flags the user set, validates
// the result and configures logging.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if flags.Changed("file") {
		cfg.Data.Files = o.files
	}
	if flags.Changed("db") {
		cfg.Data.DB = o.db
	}
	if flags.Changed("dataset") {
		cfg.Data.Dataset = o.dataset
	}
	if flags.Changed("url") {
		cfg.Data.URL = o.url
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logging.Init(level, cfg.Log.Format, cmd.ErrOrStderr())
	helpers.Version = version

	o.cfg = cfg
	return nil
}
