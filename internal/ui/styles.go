package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorMainActive = "#007BFF" // Blue - active main tab background
	ColorSubActive  = "#28A745" // Green - active sub-tab background
	ColorInactive   = "#CCCCCC" // Light gray - inactive tab background
	ColorTabText    = "#4F4E4E" // Dark gray - inactive tab label
	ColorOnActive   = "#FFFFFF" // White - active tab label
	ColorAccent     = "86"      // Cyan/green - titles, panel border
	ColorHighlight  = "205"     // Magenta - focus marker, key names
	ColorMuted      = "241"     // Gray - hints
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	MainActive lipgloss.Style // Active main tab button
	SubActive  lipgloss.Style // Active sub-tab button
	Inactive   lipgloss.Style // Any inactive tab button

	Panel   lipgloss.Style // Content panel box
	Heading lipgloss.Style // "Selected Tab:" heading
	Value   lipgloss.Style // Selected tab names inside the panel

	Focus lipgloss.Style // Row focus marker
	Hint  lipgloss.Style // Help/hint text
	Box   lipgloss.Style // Overlay box
	Title lipgloss.Style // Overlay title
}{
	MainActive: lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color(ColorOnActive)).
		Background(lipgloss.Color(ColorMainActive)),
	SubActive: lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true).
		Foreground(lipgloss.Color(ColorOnActive)).
		Background(lipgloss.Color(ColorSubActive)),
	Inactive: lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(lipgloss.Color(ColorTabText)).
		Background(lipgloss.Color(ColorInactive)),
	Panel: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 2).
		MarginTop(1),
	Heading: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Value: lipgloss.NewStyle().
		Bold(true),
	Focus: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
}

// buttonStyle picks the style for a tab button on a given row.
func buttonStyle(active, sub bool) lipgloss.Style {
	switch {
	case !active:
		return Styles.Inactive
	case sub:
		return Styles.SubActive
	default:
		return Styles.MainActive
	}
}
