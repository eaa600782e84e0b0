package tui

import (
	"context"

	"location-selector/models"
	"location-selector/selector"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Fetcher loads the option lists. *api.Client satisfies it.
type Fetcher = selector.Source

// Model represents the main TUI model
type Model struct {
	ctx     context.Context
	fetcher Fetcher
	logger  *zap.Logger

	sel      *selector.Selector
	mountReq selector.Request

	width  int
	height int

	// Pane layout
	leftPaneWidth  int
	rightPaneWidth int
	showRightPane  bool

	// Dropdown interaction. cursor indexes the open dropdown's options with
	// the placeholder at 0.
	focus  models.Level
	open   bool
	cursor int

	spinner  spinner.Model
	spinning bool

	// Activity log for the right pane
	activity             []string
	activityScrollOffset int
}

// NewModel creates a new TUI model and mounts the selector. The country
// request is sent by Init.
func NewModel(ctx context.Context, fetcher Fetcher, logger *zap.Logger) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := Model{
		ctx:     ctx,
		fetcher: fetcher,
		logger:  logger.With(zap.String("component", "tui")),
		sel:     selector.New(),
		focus:   models.LevelCountry,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(spinnerStyle),
		),
		activity: []string{},
	}
	m.mountReq = m.sel.Mount()
	m.spinning = true
	m.addActivityAction("Loading " + m.mountReq.String())
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchCmd(m.ctx, m.fetcher, m.mountReq), m.spinner.Tick)
}

// Selector exposes the underlying selection state.
func (m Model) Selector() *selector.Selector {
	return m.sel
}
