package tui

import "github.com/charmbracelet/lipgloss"

// Console theme colors (dark mode)
var (
	// Background scale
	bgColor        = lipgloss.Color("#0a0a0a") // main background
	bgPanelColor   = lipgloss.Color("#141414") // panel background
	bgElementColor = lipgloss.Color("#1e1e1e") // element background
	bgTrackColor   = lipgloss.Color("#282828") // timeline track bed

	// Border colors
	borderSubtleColor = lipgloss.Color("#3c3c3c")
	borderActiveColor = lipgloss.Color("#606060")

	// Primary/Accent colors
	primaryColor   = lipgloss.Color("#fab283") // warm peach/orange
	secondaryColor = lipgloss.Color("#5c9cf5") // blue
	accentColor    = lipgloss.Color("#9d7cd8") // purple

	// Semantic colors
	errorColor   = lipgloss.Color("#e06c75") // red
	warningColor = lipgloss.Color("#f5a742") // orange
	successColor = lipgloss.Color("#7fd88f") // green
	infoColor    = lipgloss.Color("#56b6c2") // cyan

	// Text colors
	textColor      = lipgloss.Color("#eeeeee")
	textMutedColor = lipgloss.Color("#808080")
)

// Base style with background - all styles inherit from this
var baseStyle = lipgloss.NewStyle().Background(bgColor)

// Header styles
var (
	titleStyle = baseStyle.
			Foreground(textColor).
			Bold(true)

	caseStyle = baseStyle.
			Foreground(textMutedColor)

	timecodeStyle = baseStyle.
			Foreground(primaryColor).
			Bold(true)
)

// Panel styles
var (
	panelStyle = lipgloss.NewStyle().
			Background(bgPanelColor).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(borderSubtleColor)

	activePanelStyle = panelStyle.
				BorderForeground(borderActiveColor)

	panelTitleStyle = lipgloss.NewStyle().
			Background(bgPanelColor).
			Foreground(primaryColor).
			Bold(true)
)

// Feed grid styles
var (
	feedCellStyle = lipgloss.NewStyle().
			Background(bgElementColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(borderSubtleColor).
			Align(lipgloss.Center, lipgloss.Center)

	feedActiveStyle = feedCellStyle.
			BorderForeground(secondaryColor)

	feedSwapStyle = feedCellStyle.
			BorderForeground(accentColor)

	feedLabelStyle = lipgloss.NewStyle().
			Background(bgElementColor).
			Foreground(textMutedColor)
)

// Timeline styles
var (
	trackBedStyle = lipgloss.NewStyle().
			Background(bgTrackColor).
			Foreground(textMutedColor)

	trackLabelStyle = baseStyle.
			Foreground(textMutedColor)

	playheadStyle = lipgloss.NewStyle().
			Background(errorColor).
			Foreground(textColor)

	axisStyle = baseStyle.
			Foreground(textMutedColor)
)

// Log panel styles
var (
	recordingStyle = baseStyle.
			Foreground(errorColor).
			Bold(true)

	pendingStyle = baseStyle.
			Foreground(warningColor).
			Bold(true)

	guardrailStyle = baseStyle.
			Foreground(warningColor)

	eventLabelStyle = baseStyle.
			Foreground(textColor)

	eventMetaStyle = baseStyle.
			Foreground(textMutedColor)

	highlightStyle = lipgloss.NewStyle().
			Background(bgElementColor).
			Foreground(primaryColor)

	selectedStyle = lipgloss.NewStyle().
			Background(bgElementColor).
			Foreground(textColor).
			Bold(true)

	tagStyle = baseStyle.
			Foreground(infoColor)
)

// Status and feedback styles
var (
	statusStyle = baseStyle.
			Foreground(successColor)

	errorStyle = baseStyle.
			Foreground(errorColor)

	helpStyle = baseStyle.
			Foreground(textMutedColor)

	keyStyle = baseStyle.
			Foreground(textColor).
			Bold(true)

	toastInfoStyle = lipgloss.NewStyle().
			Background(bgElementColor).
			Foreground(infoColor).
			Padding(0, 1)

	toastWarnStyle = lipgloss.NewStyle().
			Background(bgElementColor).
			Foreground(warningColor).
			Padding(0, 1)

	toastErrorStyle = lipgloss.NewStyle().
			Background(bgElementColor).
			Foreground(errorColor).
			Padding(0, 1)
)

// ApplyTheme adjusts the base palette for the configured theme. Only the
// background and text scales move; semantic colors stay put.
func ApplyTheme(theme string) {
	if theme != "light" {
		return
	}
	bgColor = lipgloss.Color("#fafafa")
	bgPanelColor = lipgloss.Color("#f0f0f0")
	bgElementColor = lipgloss.Color("#e4e4e4")
	bgTrackColor = lipgloss.Color("#d8d8d8")
	textColor = lipgloss.Color("#1a1a1a")
	textMutedColor = lipgloss.Color("#6a6a6a")

	baseStyle = lipgloss.NewStyle().Background(bgColor)
	titleStyle = baseStyle.Foreground(textColor).Bold(true)
	caseStyle = baseStyle.Foreground(textMutedColor)
	timecodeStyle = baseStyle.Foreground(primaryColor).Bold(true)
	trackBedStyle = lipgloss.NewStyle().Background(bgTrackColor).Foreground(textMutedColor)
	trackLabelStyle = baseStyle.Foreground(textMutedColor)
	axisStyle = baseStyle.Foreground(textMutedColor)
	eventLabelStyle = baseStyle.Foreground(textColor)
	eventMetaStyle = baseStyle.Foreground(textMutedColor)
	helpStyle = baseStyle.Foreground(textMutedColor)
	keyStyle = baseStyle.Foreground(textColor).Bold(true)
}
