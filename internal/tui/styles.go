package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorWarn    lipgloss.Color = "#f9e2af"
	colorSurface lipgloss.Color = "#313244"
	colorTabOff  lipgloss.Color = "#7f849c"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	keyStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorTabOff).
				Padding(0, 1)

	doneStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	pendingStyle = lipgloss.NewStyle().Foreground(colorWarn)

	coachStyle = lipgloss.NewStyle().Foreground(colorAccent)
	userStyle  = lipgloss.NewStyle().Foreground(colorText)

	toastInfoStyle = lipgloss.NewStyle().
			Background(colorSurface).
			Foreground(colorText).
			Padding(0, 1)
	toastSuccessStyle = toastInfoStyle.Foreground(colorSuccess)
	toastErrorStyle   = toastInfoStyle.Foreground(colorError)

	fallbackStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(1, 2)
)
