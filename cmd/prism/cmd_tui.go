package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/spektr-org/prism/internal/logging"
	"github.com/spektr-org/prism/internal/tui"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse charts interactively in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !opts.cfg.Data.HasSource() {
				return errNoSource
			}
			// The UI owns the terminal; keep logs off it unless asked for debug.
			if opts.cfg.Log.Level != "debug" {
				level, _ := logging.ParseLevel("error")
				logging.Init(level, opts.cfg.Log.Format, cmd.ErrOrStderr())
			}

			ctx := cmd.Context()
			loadStore := func() tea.Cmd {
				return func() tea.Msg {
					view, err := loadView(ctx, opts.cfg.Data)
					return tui.StoreLoaded{View: view, Err: err}
				}
			}

			app := tui.NewApp(loadStore, opts.cfg.Defaults.Variable, opts.cfg.Defaults.Filter)
			p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
			_, err := p.Run()
			return err
		},
	}
}
