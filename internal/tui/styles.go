// Package tui implements the interactive footprint browser.
package tui

import "github.com/charmbracelet/lipgloss"

// Layout defaults used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 120
	defaultHeight = 30
	minHeight     = 3

	// chromeHeight is the number of lines around the list: summary, table
	// header with its border, filter line and help.
	chromeHeight = 7

	filterInputCharLimit = 64
	filterInputWidth     = 40
)

// Column widths of the list.
const (
	colWidthID        = 36
	colWidthKind      = 8
	colWidthPayload   = 24
	colWidthEmissions = 14
)

//nolint:gochecknoglobals // immutable styles
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ValueStyle  = lipgloss.NewStyle().Bold(true)
	InfoStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	tableHeaderStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240")).
				BorderBottom(true).
				Bold(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
