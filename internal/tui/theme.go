package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used by the menu.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Prompt   lipgloss.Style
	Result   lipgloss.Style
	Error    lipgloss.Style
}

// DefaultTheme returns the standard menu styles.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Result: lipgloss.NewStyle(),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// PlainTheme returns unstyled output, for --no-color and tests.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:    plain,
		Subtitle: plain,
		Help:     plain,
		Card:     plain,
		Prompt:   plain,
		Result:   plain,
		Error:    plain,
	}
}
