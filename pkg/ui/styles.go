package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorPurple = lipgloss.Color("63")
	colorCyan   = lipgloss.Color("86")
	colorPink   = lipgloss.Color("205")
	colorRed    = lipgloss.Color("196")
	colorGrey   = lipgloss.Color("240")
	colorWhite  = lipgloss.Color("252")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(colorPurple).
			Padding(0, 1)

	userLabelStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)

	assistantLabelStyle = lipgloss.NewStyle().
				Foreground(colorPurple).
				Bold(true)

	sessionInfoStyle = lipgloss.NewStyle().
				Foreground(colorGrey)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorRed).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorGrey)
)
