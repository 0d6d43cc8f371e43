package main

import (
	"fmt"
	"os"
	"time"

	"showroom/internal/config"
	"showroom/internal/inventory"
	"showroom/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// spinnerDelay keeps the startup spinner hidden for inventories that load
// almost instantly.
const spinnerDelay = 200 * time.Millisecond

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

type startupAnimator interface {
	ui.StartupReporter
	Stop()
}

type searchDeps struct {
	open    func(path string) (inventory.Source, error)
	builder func(ui.Config) (*ui.App, error)
	factory programFactory
	spinner func() startupAnimator
}

func defaultSearchDeps() searchDeps {
	return searchDeps{
		open:    inventory.Open,
		builder: ui.NewApp,
		factory: func(app *ui.App) programRunner {
			return tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
		},
		spinner: func() startupAnimator {
			return newStartupSpinner(os.Stderr, spinnerDelay)
		},
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search",
		Short: "Open the interactive search form (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, defaultSearchDeps())
		},
	}
}

func runSearch(cmd *cobra.Command, deps searchDeps) error {
	src, err := deps.open(config.GetString(config.KeyInventoryPath))
	if err != nil {
		return err
	}
	cfg := ui.Config{
		Source:       src,
		BlurGrace:    config.BlurGrace(),
		MaxVisible:   config.MaxVisible(),
		ResultsLimit: config.GetInt(config.KeyResultsLimit),
		Version:      Version,
	}

	start := time.Now()
	app, err := runProgram(cfg, deps.builder, deps.factory, deps.spinner)
	if err != nil {
		return err
	}
	printExitSummary(cmd.OutOrStdout(), exitSummaryOf(app, time.Since(start)))
	return nil
}

// runProgram builds the app while the spinner reports startup stages, then
// hands it to the program. The spinner is always stopped before the program
// takes over the terminal.
func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory, spinnerFactory func() startupAnimator) (*ui.App, error) {
	if builder == nil {
		return nil, fmt.Errorf("app builder is nil")
	}
	var spinner startupAnimator
	if spinnerFactory != nil {
		spinner = spinnerFactory()
	}
	if spinner != nil {
		cfg.StartupReporter = spinner
	}

	app, err := builder(cfg)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return nil, fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return nil, fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return nil, fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("run UI: %w", err)
	}
	return app, nil
}

func exitSummaryOf(app *ui.App, d time.Duration) ExitSummary {
	return ExitSummary{
		Version:   Version,
		Selection: app.Selection(),
		Matches:   len(app.Matches()),
		Total:     app.Form().Cascade().Len(),
		Duration:  d,
	}
}

