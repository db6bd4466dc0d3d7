package engine

import "log/slog"

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute() and the builders
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Logger   *slog.Logger
	Palette  []string // slice colours, cycled by rank
	BarColor string
}

// Category10 is the ten-colour categorical palette used for distribution slices.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// DefaultBarColor fills every bar of a bar chart.
const DefaultBarColor = "#69b3a2"

// WithLogger routes engine debug logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// WithPalette overrides the slice colours. An empty palette is ignored.
func WithPalette(colors []string) Option {
	return func(c *config) {
		if len(colors) > 0 {
			c.Palette = colors
		}
	}
}

// WithBarColor overrides the bar fill colour.
func WithBarColor(color string) Option {
	return func(c *config) {
		if color != "" {
			c.BarColor = color
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Logger:   slog.Default(),
		Palette:  Category10,
		BarColor: DefaultBarColor,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
