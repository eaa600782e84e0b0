package tui

import (
	"strings"

	"location-selector/models"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Location Selector") + "\n")

	for _, level := range models.Levels {
		s.WriteString(m.viewControl(level) + "\n")
		if m.open && m.focus == level {
			s.WriteString(m.viewOptions(level))
		}
	}

	if errText := m.sel.Error(); errText != "" {
		s.WriteString(errorStyle.Render(errText) + "\n")
	}

	if msg := m.sel.Message(); msg != "" {
		s.WriteString(successStyle.Render(msg) + "\n")
	}

	s.WriteString("\n" + helpStyle.Render(m.helpText()))

	return m.renderWithDynamicWidth(s.String())
}

// viewControl renders the closed dropdown for level. Disabled controls are
// muted.
func (m Model) viewControl(level models.Level) string {
	enabled := m.sel.Enabled(level)

	label := labelStyle
	style := controlStyle
	switch {
	case !enabled:
		label = mutedLabelStyle
		style = disabledControlStyle
	case m.focus == level:
		style = focusedControlStyle
	}

	value := placeholderStyle.Render(level.Placeholder())
	if current := m.sel.Selected(level); current != "" {
		value = current.String()
	}

	arrow := " ▾"
	if m.open && m.focus == level {
		arrow = " ▴"
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		label.Render(capitalize(level.String())),
		style.Render(value+arrow),
	)

	if m.sel.Loading(level) {
		row = lipgloss.JoinHorizontal(lipgloss.Center, row, " "+m.spinner.View()+" loading")
	}

	return row
}

// viewOptions renders the open dropdown, placeholder first.
func (m Model) viewOptions(level models.Level) string {
	var s strings.Builder

	options := append([]string{level.Placeholder()}, namesToStrings(m.sel.Options(level))...)
	for i, opt := range options {
		if i == m.cursor {
			s.WriteString(optionStyle.Render(selectedOptionStyle.Render("> "+opt)) + "\n")
		} else {
			s.WriteString(optionStyle.Render("  "+opt) + "\n")
		}
	}

	return s.String()
}

func (m Model) helpText() string {
	if m.open {
		return "↑/↓ to move, Enter to choose, Esc to close"
	}
	pane := "s to show activity"
	if m.showRightPane {
		pane = "s to hide activity"
	}
	return "Tab/↑/↓ to move, Enter to open, Ctrl+R to reload, " + pane + ", q to quit"
}

// renderWithDynamicWidth renders content with single or two-pane layout
func (m Model) renderWithDynamicWidth(content string) string {
	if m.width > 0 && m.height > 0 {
		if m.showRightPane && m.leftPaneWidth > 0 && m.rightPaneWidth > 0 {
			return m.renderTwoPaneLayout(content)
		}
		return m.renderSinglePaneLayout(content)
	}

	// Fallback if dimensions not set
	if m.showRightPane {
		return lipgloss.JoinHorizontal(lipgloss.Top, boxStyle.Render(content), " ", boxStyle.Render(m.renderActivity()))
	}
	return boxStyle.Render(content)
}

// renderSinglePaneLayout renders content in single pane mode
func (m Model) renderSinglePaneLayout(content string) string {
	marginHorizontal := 2
	marginVertical := 1

	contentWidth := m.width - (marginHorizontal * 2) - 2 // 2 for border
	contentHeight := m.height - (marginVertical * 2) - 2 // 2 for border

	if contentWidth < 50 {
		contentWidth = 50
	}
	if contentHeight < 10 {
		contentHeight = 10
	}

	mainStyle := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor).
		Align(lipgloss.Left)

	return lipgloss.NewStyle().
		Padding(marginVertical, marginHorizontal).
		Render(mainStyle.Render(content))
}

// renderTwoPaneLayout renders the selector on the left and activity on the right
func (m Model) renderTwoPaneLayout(content string) string {
	marginVertical := 1
	contentHeight := m.height - (marginVertical * 2) - 2 // 2 for border

	if contentHeight < 10 {
		contentHeight = 10
	}

	leftWidth := m.leftPaneWidth - 4   // border and padding
	rightWidth := m.rightPaneWidth - 4 // border and padding

	paneStyle := lipgloss.NewStyle().
		Height(contentHeight).
		Padding(1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(secondaryColor)

	leftPane := paneStyle.Width(leftWidth).Render(content)
	rightPane := paneStyle.Width(rightWidth).Render(m.renderActivity())

	return lipgloss.NewStyle().
		Padding(marginVertical, 1).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, leftPane, " ", rightPane))
}

func namesToStrings(names []models.LocationName) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, n.String())
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
