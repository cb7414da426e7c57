package tui

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.Color("#FF3B30")
	textColor    = lipgloss.Color("255")
	mutedColor   = lipgloss.Color("241")
	surfaceColor = lipgloss.Color("235")

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(accentColor).
			Bold(true).
			Padding(0, 2)

	searchStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedSearchStyle = searchStyle.
				BorderForeground(accentColor)

	relationStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	nameStyle = lipgloss.NewStyle().
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	callButtonStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(accentColor).
			Bold(true).
			Padding(0, 1)

	avatarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("238")).
			Bold(true).
			Width(4).
			Align(lipgloss.Center)

	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("237"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// fadeColor maps a card opacity in [0.6, 1] onto the grayscale ramp
func fadeColor(opacity float64) lipgloss.Color {
	t := (opacity - 0.6) / 0.4
	t = math.Max(0, math.Min(1, t))
	return lipgloss.Color(strconv.Itoa(243 + int(math.Round(t*12))))
}
