package tui

import (
	"location-selector/models"
	"location-selector/selector"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMessage(msg)
	case tea.MouseMsg:
		return m.handleMouseMessage(msg)
	case FetchResultMsg:
		return m.handleFetchResult(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	}

	return m, nil
}

// handleWindowSize handles window resize events
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layoutPanes()
	return m, nil
}

func (m *Model) layoutPanes() {
	if m.showRightPane {
		m.leftPaneWidth = int(float64(m.width) * 0.6)    // 60% for left pane
		m.rightPaneWidth = m.width - m.leftPaneWidth - 1 // rest minus 1 for separator
	} else {
		m.leftPaneWidth = m.width
		m.rightPaneWidth = 0
	}
}

// handleKeyMessage handles keyboard input for the open or closed dropdown
func (m Model) handleKeyMessage(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+r":
		return m.remount()
	case "pgup", "ctrl+u":
		m.scrollActivity(-5)
		return m, nil
	case "pgdown", "ctrl+d":
		m.scrollActivity(5)
		return m, nil
	}

	if m.open {
		return m.updateOpenDropdown(msg)
	}
	return m.updateClosedDropdown(msg)
}

func (m Model) updateClosedDropdown(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		m.showRightPane = !m.showRightPane
		m.layoutPanes()
	case "tab", "down", "j", "right", "l":
		m.moveFocus(1)
	case "shift+tab", "up", "k", "left", "h":
		m.moveFocus(-1)
	case "enter", " ":
		if m.sel.Enabled(m.focus) {
			m.open = true
			m.cursor = m.selectedIndex(m.focus)
		}
	}

	return m, nil
}

func (m Model) updateOpenDropdown(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.open = false
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sel.Options(m.focus)) {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.sel.Options(m.focus))
	case "enter", " ":
		m.open = false
		return m.choose(m.focus, m.optionAt(m.focus, m.cursor))
	}

	return m, nil
}

// choose applies a pick on level. The placeholder arrives as an empty name
// and goes through the same setter, so it triggers the same resets.
func (m Model) choose(level models.Level, name models.LocationName) (Model, tea.Cmd) {
	m.logger.Debug("selection changed",
		zap.Stringer("level", level),
		zap.String("value", name.String()),
	)

	req, fetch := m.sel.Select(level, name)

	if name == "" {
		m.addActivityStatus(level.String(), "cleared")
	} else {
		m.addActivityStatus(level.String(), name.String())
		if level < models.LevelCity {
			m.focus = level + 1
		}
	}

	if m.sel.Message() != "" {
		m.addActivityStatus("Selection", "complete")
	}

	if !fetch {
		return m, nil
	}
	return m.startFetch(req)
}

// remount drops every selection and reloads the countries. It is the only
// way to retry a failed country fetch.
func (m Model) remount() (Model, tea.Cmd) {
	m.open = false
	m.cursor = 0
	m.focus = models.LevelCountry
	m.logger.Info("reloading countries")
	return m.startFetch(m.sel.Mount())
}

func (m Model) handleFetchResult(msg FetchResultMsg) (Model, tea.Cmd) {
	res := msg.Result
	fields := []zap.Field{
		zap.Stringer("level", res.Request.Level),
		zap.Uint64("seq", res.Request.Seq),
		zap.String("country", res.Request.Country.String()),
		zap.String("state", res.Request.State.String()),
	}

	if !m.sel.Apply(res) {
		m.logger.Debug("discarding stale response", fields...)
		return m, nil
	}

	if res.Err != nil {
		m.logger.Error("fetch failed", append(fields, zap.Error(res.Err))...)
		m.addActivityStatus("Error", selector.FailureMessage(res.Request.Level))
	} else {
		m.logger.Info("fetch succeeded", append(fields, zap.Int("count", len(res.Names)))...)
		m.addActivityStatus("Loaded "+res.Request.String(), pluralize(len(res.Names), res.Request.Level))
	}

	m.clampCursor()
	return m, nil
}

func (m Model) handleSpinnerTick(msg spinner.TickMsg) (Model, tea.Cmd) {
	if !m.anyLoading() {
		m.spinning = false
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// handleMouseMessage scrolls the activity pane with the wheel
func (m Model) handleMouseMessage(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.showRightPane {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollActivity(-2)
	case tea.MouseButtonWheelDown:
		m.scrollActivity(2)
	}
	return m, nil
}

// moveFocus cycles focus by delta, skipping disabled controls.
func (m *Model) moveFocus(delta int) {
	n := len(models.Levels)
	next := int(m.focus)
	for i := 0; i < n; i++ {
		next = (next + delta + n) % n
		if m.sel.Enabled(models.Level(next)) {
			m.focus = models.Level(next)
			return
		}
	}
}

func (m Model) anyLoading() bool {
	for _, level := range models.Levels {
		if m.sel.Loading(level) {
			return true
		}
	}
	return false
}

// optionAt maps a cursor position to a name; 0 is the placeholder.
func (m Model) optionAt(level models.Level, idx int) models.LocationName {
	opts := m.sel.Options(level)
	if idx <= 0 || idx > len(opts) {
		return ""
	}
	return opts[idx-1]
}

func (m Model) selectedIndex(level models.Level) int {
	current := m.sel.Selected(level)
	if current == "" {
		return 0
	}
	for i, name := range m.sel.Options(level) {
		if name == current {
			return i + 1
		}
	}
	return 0
}

func (m *Model) clampCursor() {
	if last := len(m.sel.Options(m.focus)); m.cursor > last {
		m.cursor = last
	}
	if !m.sel.Enabled(m.focus) {
		m.open = false
	}
}
