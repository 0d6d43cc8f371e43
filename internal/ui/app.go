package ui

import (
	"context"
	"fmt"
	"time"

	"showroom/internal/debug"
	appErrors "showroom/internal/errors"
	"showroom/internal/facet"
	"showroom/internal/inventory"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loadTimeout         = 30 * time.Second
	defaultResultsLimit = 10
	minFormWidth        = 28
	maxFormWidth        = 56
)

// Config configures the UI application.
type Config struct {
	Source          inventory.Source
	BlurGrace       time.Duration
	MaxVisible      int
	ResultsLimit    int
	StartupReporter StartupReporter
	Version         string // Version string to display in header
}

// App is the Bubble Tea host for one search session: a header, the facet
// form, a results pane with the narrowed records and a key hint footer.
type App struct {
	form    SearchForm
	keys    KeyMap
	help    help.Model
	spinner spinner.Model

	showHelp       bool
	width          int
	height         int
	resultsLimit   int
	version        string
	source         inventory.Source
	stats          inventory.Stats
	reloadInFlight bool

	toast        string
	toastIsError bool
	toastSeq     int
	lastEvent    string
}

// NewApp loads the configured inventory and builds the app around it.
func NewApp(cfg Config) (*App, error) {
	if cfg.Source == nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "no inventory source configured", nil)
	}
	reporter := cfg.StartupReporter
	reportStage(reporter, StartupStageOpeningInventory, cfg.Source.Describe())

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	reportStage(reporter, StartupStageLoadingRecords, "")
	idx, stats, err := inventory.Load(ctx, cfg.Source)
	if err != nil {
		return nil, err
	}
	reportStage(reporter, StartupStageComputingFacets, fmt.Sprintf("%d vehicles", idx.Len()))

	app := NewAppWithIndex(idx, stats, cfg)
	reportStage(reporter, StartupStageReady, "")
	return app, nil
}

// NewAppWithIndex builds the app over an already loaded index.
func NewAppWithIndex(idx *inventory.Index, stats inventory.Stats, cfg Config) *App {
	limit := cfg.ResultsLimit
	if limit <= 0 {
		limit = defaultResultsLimit
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleSpinner()

	form := NewSearchForm(facet.NewCascade(idx), FormOptions{
		Width:      40,
		MaxVisible: cfg.MaxVisible,
		BlurGrace:  cfg.BlurGrace,
	})

	return &App{
		form:         form,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		spinner:      sp,
		resultsLimit: limit,
		version:      cfg.Version,
		source:       cfg.Source,
		stats:        stats,
	}
}

// Init implements tea.Model. The brand field starts focused.
func (m *App) Init() tea.Cmd {
	return m.form.FocusField(facet.Brand)
}

// Selection returns the committed facets.
func (m *App) Selection() facet.Selection {
	return m.form.Selection()
}

// Matches returns the records satisfying the committed facets.
func (m *App) Matches() []inventory.Record {
	return m.form.Matches()
}

// Stats returns the statistics of the last inventory load.
func (m *App) Stats() inventory.Stats {
	return m.stats
}

// Form returns the search form.
func (m *App) Form() SearchForm {
	return m.form
}

func (m *App) showToast(text string, isError bool) tea.Cmd {
	m.toastSeq++
	m.toast = text
	m.toastIsError = isError
	if isError {
		debug.Log("toast: ", text)
	}
	return scheduleToastClear(m.toastSeq)
}

func (m *App) formWidth() int {
	if m.width <= 0 {
		return 40
	}
	return min(max(m.width/2-2, minFormWidth), maxFormWidth)
}
