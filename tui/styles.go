package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - purple/blue theme
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#3B82F6") // Blue
	successColor   = lipgloss.Color("#10B981") // Green
	warningColor   = lipgloss.Color("#F59E0B") // Amber
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
	disabledBg     = lipgloss.Color("#374151")

	// Box container used before the first window size arrives
	boxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(secondaryColor).
			Align(lipgloss.Left)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			PaddingBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Width(9)

	mutedLabelStyle = labelStyle.
			Foreground(mutedColor)

	// Dropdown controls
	controlStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Border(lipgloss.NormalBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1).
			Width(28)

	focusedControlStyle = controlStyle.
				BorderForeground(primaryColor)

	disabledControlStyle = controlStyle.
				Foreground(mutedColor).
				Background(disabledBg)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	// Open dropdown options
	optionStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	// Status styles
	successStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	// Activity pane
	activityActionStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Italic(true)

	activityKeyStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	activitySuccessStyle = lipgloss.NewStyle().
				Foreground(successColor)

	activityWarningStyle = lipgloss.NewStyle().
				Foreground(warningColor)

	activityErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor)

	activityNeutralStyle = lipgloss.NewStyle().
				Foreground(textColor)
)
