package cli

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#0969DA") // blue
	accentColor  = lipgloss.Color("#2DA44E") // green
	errorColor   = lipgloss.Color("#CF222E") // red
	dimColor     = lipgloss.Color("#6E7681") // gray
	linkColor    = lipgloss.Color("#58A6FF") // light blue
	titleColor   = lipgloss.Color("#39D353") // bright green
	dateColor    = lipgloss.Color("#A371F7") // light purple
	sourceColor  = lipgloss.Color("#FFA657") // light orange

	headerStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(titleColor).
			Bold(true)

	sourceStyle = lipgloss.NewStyle().
			Foreground(sourceColor)

	dateStyle = lipgloss.NewStyle().
			Foreground(dateColor)

	linkStyle = lipgloss.NewStyle().
			Foreground(linkColor).
			Underline(true)

	successStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(dimColor)
)
