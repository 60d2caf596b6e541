// Package ui draws the client in the terminal: page documents, the auth
// prompt, navigation, and the full-screen chat overlay.
package ui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Header    lipgloss.Style
	Subtitle  lipgloss.Style
	Panel     lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Danger    lipgloss.Style
	Border    lipgloss.Style
	TableHead lipgloss.Style
	Cell      lipgloss.Style
	Bar       []lipgloss.Style
	User      lipgloss.Style
	Assistant lipgloss.Style
	ErrorTurn lipgloss.Style
}

func DefaultTheme() Theme {
	green := lipgloss.Color("#00A753")
	muted := lipgloss.Color("#648273")
	danger := lipgloss.Color("#E02424")

	return Theme{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(green),
		Subtitle: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Muted: lipgloss.NewStyle().
			Foreground(muted),
		Accent: lipgloss.NewStyle().
			Bold(true).
			Foreground(green),
		Success: lipgloss.NewStyle().
			Foreground(green),
		Danger: lipgloss.NewStyle().
			Foreground(danger),
		Border: lipgloss.NewStyle().
			Foreground(muted),
		TableHead: lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1),
		Cell: lipgloss.NewStyle().
			Padding(0, 1),
		Bar: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6384")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#36A2EB")),
		},
		User: lipgloss.NewStyle().
			Bold(true),
		Assistant: lipgloss.NewStyle().
			Bold(true).
			Foreground(green),
		ErrorTurn: lipgloss.NewStyle().
			Foreground(danger).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(danger).
			PaddingLeft(1),
	}
}
