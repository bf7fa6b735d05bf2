package ui

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	colorLime  = "#A3E635"
	colorGray  = "#6B7280"
	colorRed   = "#EF4444"
	colorWhite = "#E5E7EB"
)

// Styles holds the lipgloss styles used by the search view.
type Styles struct {
	Title lipgloss.Style
	Item  lipgloss.Style
	Count lipgloss.Style
	Error lipgloss.Style
	Help  lipgloss.Style
}

// DefaultStyles returns the standard color styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorLime)),
		Item:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorWhite)).PaddingLeft(2),
		Count: lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color(colorRed)).PaddingLeft(2),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray)),
	}
}

// NoColorStyles returns styles without any coloring.
func NoColorStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title: plain.Bold(true),
		Item:  plain.PaddingLeft(2),
		Count: plain,
		Error: plain.PaddingLeft(2),
		Help:  plain,
	}
}
