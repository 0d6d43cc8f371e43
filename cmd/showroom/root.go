package main

import (
	"fmt"
	"strings"
	"time"

	"showroom/internal/config"
	"showroom/internal/debug"
	appErrors "showroom/internal/errors"
	"showroom/internal/ui/theme"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	inventoryPath string
	theme         string
	debug         bool
	blurGrace     time.Duration
	maxVisible    int
	outputFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "showroom",
		Short: "Narrow a vehicle inventory by brand, model, year and price",
		Long: `showroom - cascading vehicle search
  - pick a brand, then a model, a year and a price range
  - every choice narrows the options offered by the fields after it`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd, opts)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			debug.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, defaultSearchDeps())
		},
	}

	bindRootFlags(cmd, opts)
	cmd.AddCommand(newSearchCmd(), newFacetsCmd(), newVersionCmd())
	return cmd
}

func bindRootFlags(cmd *cobra.Command, opts *rootOptions) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.inventoryPath, "inventory", "i", "", "Inventory to search (.db, .sqlite, .yaml, .yml or .json)")
	flags.StringVar(&opts.theme, "theme", "", "Color theme ("+strings.Join(theme.Available(), ", ")+")")
	flags.BoolVar(&opts.debug, "debug", false, "Write a debug log under ~/.showroom")
	flags.DurationVar(&opts.blurGrace, "blur-grace", config.DefaultBlurGrace, "How long a suggestion list stays open after its field loses focus")
	flags.IntVar(&opts.maxVisible, "max-visible", config.DefaultMaxVisible, "Suggestions shown at once")
	flags.StringVar(&opts.outputFormat, "output-format", "", "Report markdown style (rich, light, plain)")
}

// setup loads configuration, layers explicitly set flags on top, and applies
// the theme and debug log.
func setup(cmd *cobra.Command, opts *rootOptions) error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("initialize config: %w", err)
	}
	if err := config.ApplyOverrides(flagOverrides(cmd, opts)); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}

	if name := strings.TrimSpace(config.GetString(config.KeyTheme)); name != "" {
		if !theme.SetTheme(name) {
			return appErrors.New(appErrors.CodeConfigurationError,
				fmt.Sprintf("unknown theme %q (available: %s)", name, strings.Join(theme.Available(), ", ")), nil)
		}
	}
	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	debug.Debug("configured", "inventory", config.GetString(config.KeyInventoryPath), "theme", theme.Current().Name)
	return nil
}

// flagOverrides returns only the flags the user actually passed, so config
// files and environment variables keep precedence over flag defaults.
func flagOverrides(cmd *cobra.Command, opts *rootOptions) map[string]any {
	flags := cmd.Flags()
	overrides := map[string]any{}
	if flags.Changed("inventory") {
		overrides[config.KeyInventoryPath] = strings.TrimSpace(opts.inventoryPath)
	}
	if flags.Changed("theme") {
		overrides[config.KeyTheme] = opts.theme
	}
	if flags.Changed("debug") {
		overrides[config.KeyDebug] = opts.debug
	}
	if flags.Changed("blur-grace") {
		overrides[config.KeyBlurGrace] = opts.blurGrace
	}
	if flags.Changed("max-visible") {
		overrides[config.KeyMaxVisible] = opts.maxVisible
	}
	if flags.Changed("output-format") {
		overrides[config.KeyOutputFormat] = opts.outputFormat
	}
	return overrides
}
