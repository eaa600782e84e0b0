package tui

import (
	"context"

	"location-selector/selector"

	tea "github.com/charmbracelet/bubbletea"
)

// FetchResultMsg carries the outcome of a list fetch back to Update.
type FetchResultMsg struct {
	Result selector.Result
}

// fetchCmd creates a command that loads the list described by req
func fetchCmd(ctx context.Context, f Fetcher, req selector.Request) tea.Cmd {
	return func() tea.Msg {
		return FetchResultMsg{Result: selector.Fetch(ctx, f, req)}
	}
}

// startFetch issues req and makes sure the spinner is running while it is
// in flight.
func (m Model) startFetch(req selector.Request) (Model, tea.Cmd) {
	m.addActivityAction("Loading " + req.String())
	cmds := []tea.Cmd{fetchCmd(m.ctx, m.fetcher, req)}
	if !m.spinning {
		m.spinning = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}
