// Package panel renders a titled, framed block of text for the TUI.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/tui/theme"
)

// Model renders an information panel with a title and body lines.
type Model struct {
	title      string
	lines      []string
	width      int
	frameStyle lipgloss.Style
	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
}

// New returns a panel styled by th.
func New(th theme.PanelTheme) Model {
	return Model{
		frameStyle: th.Frame,
		titleStyle: th.Title,
		bodyStyle:  th.Body,
	}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetWidth fixes the outer width. Zero sizes the panel to its content.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// InnerWidth is the space left for body text inside the frame.
func (m Model) InnerWidth() int {
	return max(m.width-m.frameStyle.GetHorizontalFrameSize(), 1)
}

// View returns the rendered panel string and its total height in lines.
func (m Model) View() (string, int) {
	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(m.title))
	}
	for _, line := range m.lines {
		content = append(content, m.bodyStyle.Render(line))
	}
	frame := m.frameStyle
	if m.width > 0 {
		frame = frame.Width(m.width)
	}
	view := frame.Render(strings.Join(content, "\n"))
	height := strings.Count(view, "\n") + 1
	return view, height
}
