package report

import "github.com/charmbracelet/lipgloss"

type styles struct {
	user     lipgloss.Style
	unknown  lipgloss.Style
	duration lipgloss.Style
	zero     lipgloss.Style
	negative lipgloss.Style
	total    lipgloss.Style
	meta     lipgloss.Style
}

func newStyles() styles {
	return styles{
		user:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		unknown:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		duration: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		zero:     lipgloss.NewStyle().Faint(true),
		negative: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		total:    lipgloss.NewStyle().Bold(true),
		meta:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
