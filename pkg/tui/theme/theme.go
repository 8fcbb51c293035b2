package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Panel  PanelTheme
	Entry  EntryTheme
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
}

// EntryTheme styles journal entries in lists.
type EntryTheme struct {
	Date    lipgloss.Style
	Content lipgloss.Style
	Empty   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Body:  lipgloss.NewStyle(),
		},
		Entry: EntryTheme{
			Date:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111")),
			Content: lipgloss.NewStyle(),
			Empty:   lipgloss.NewStyle().Faint(true).Italic(true),
		},
	}
}
