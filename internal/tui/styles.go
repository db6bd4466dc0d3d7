package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorHighlight = lipgloss.Color("212") // Pink
)

// Panel frames the selection lists.
var Panel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorSecondary).
	Padding(0, 1)

// FocusedPanel frames the list that receives keys.
var FocusedPanel = Panel.
	BorderForeground(colorPrimary)

// PanelTitle labels a list.
var PanelTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)

// SelectedOption is the chosen radio option.
var SelectedOption = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// Option is an unchosen radio option.
var Option = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ChartTitle heads the chart area.
var ChartTitle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	MarginBottom(1)

// Muted styles unlabelled slices and hints.
var Muted = lipgloss.NewStyle().
	Foreground(colorSecondary)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// ErrorStyle renders validation and load errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true)
