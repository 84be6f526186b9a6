// Package ui is the terminal control surface. It renders engine state and
// forwards user intent; all automation logic stays in the engine.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - consistent across the application
var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorSubtle  = lipgloss.Color("241") // Medium gray
	ColorText    = lipgloss.Color("252") // Light gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	activeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	helpStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			MarginTop(1)
)
