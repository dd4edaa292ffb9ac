package statusline

import "github.com/charmbracelet/lipgloss"

type styles struct {
	enabled    bool
	plan       lipgloss.Style
	label      lipgloss.Style
	notice     lipgloss.Style
	separator  lipgloss.Style
	barBracket lipgloss.Style
	barEmpty   lipgloss.Style
	barLow     lipgloss.Style
	barMid     lipgloss.Style
	barHigh    lipgloss.Style
}

func newStyles(enabled bool) styles {
	return styles{
		enabled:    enabled,
		plan:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		notice:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		separator:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barLow:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		barMid:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		barHigh:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// render leaves text untouched unless color output was requested.
func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled || text == "" {
		return text
	}
	return style.Render(text)
}

func (s styles) barFill(percent int) lipgloss.Style {
	switch {
	case percent >= 80:
		return s.barHigh
	case percent >= 50:
		return s.barMid
	default:
		return s.barLow
	}
}
