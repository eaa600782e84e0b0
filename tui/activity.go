package tui

import (
	"fmt"
	"strings"

	"location-selector/models"

	"github.com/charmbracelet/lipgloss"
)

// renderActivity generates the content for the right pane with scrolling
func (m Model) renderActivity() string {
	var s strings.Builder

	s.WriteString(highlightStyle.Render("Activity") + "\n\n")

	if len(m.activity) == 0 {
		s.WriteString(helpStyle.Render("Nothing has happened yet."))
		return s.String()
	}

	visibleLines := m.activityVisibleLines()
	startIdx := m.activityScrollOffset
	if startIdx >= len(m.activity) {
		startIdx = len(m.activity) - 1
	}
	if startIdx < 0 {
		startIdx = 0
	}
	endIdx := startIdx + visibleLines
	if endIdx > len(m.activity) {
		endIdx = len(m.activity)
	}

	s.WriteString(strings.Join(m.activity[startIdx:endIdx], "\n"))

	if len(m.activity) > visibleLines {
		s.WriteString("\n\n" + helpStyle.Render("PgUp/PgDn, Ctrl+U/D, or mouse wheel to scroll"))
	}

	return s.String()
}

func (m Model) activityVisibleLines() int {
	// Account for borders, padding, title
	visible := m.height - 8
	if visible < 5 {
		visible = 5
	}
	return visible
}

func (m *Model) scrollActivity(delta int) {
	maxScroll := len(m.activity) - m.activityVisibleLines()
	if maxScroll < 0 {
		maxScroll = 0
	}
	m.activityScrollOffset += delta
	if m.activityScrollOffset > maxScroll {
		m.activityScrollOffset = maxScroll
	}
	if m.activityScrollOffset < 0 {
		m.activityScrollOffset = 0
	}
}

func (m *Model) addActivity(line string) {
	m.activity = append(m.activity, line)
}

// addActivityAction records something the selector started doing
func (m *Model) addActivityAction(action string) {
	m.addActivity(activityActionStyle.Render(action))
}

// addActivityStatus records a key: value line, colored by its value
func (m *Model) addActivityStatus(key, value string) {
	m.addActivity("  " + activityKeyStyle.Render(key+": ") + activityValueStyle(key, value).Render(value))
}

func activityValueStyle(key, value string) lipgloss.Style {
	lowerKey := strings.ToLower(key)
	lowerValue := strings.ToLower(value)

	switch {
	case lowerKey == "error":
		return activityErrorStyle
	case lowerValue == "cleared":
		return activityWarningStyle
	case lowerValue == "complete", strings.HasPrefix(lowerKey, "loaded"):
		if strings.HasPrefix(lowerValue, "0 ") {
			return activityWarningStyle
		}
		return activitySuccessStyle
	}
	return activityNeutralStyle
}

func pluralize(n int, level models.Level) string {
	noun := map[models.Level][2]string{
		models.LevelCountry: {"country", "countries"},
		models.LevelState:   {"state", "states"},
		models.LevelCity:    {"city", "cities"},
	}[level]
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun[0])
	}
	return fmt.Sprintf("%d %s", n, noun[1])
}
