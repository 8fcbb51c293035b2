// Package composer is the text area used to write today's entry.
package composer

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/tui/events"
)

const placeholder = "Write about your day..."

// Model wraps a textarea. ctrl+s submits, esc cancels.
type Model struct {
	id       events.ComponentID
	input    textarea.Model
	title    string
	width    int
	height   int
	hint     string
	titleCSS lipgloss.Style
	hintCSS  lipgloss.Style
}

// New builds an unfocused composer.
func New(id events.ComponentID) *Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	return &Model{
		id:       id,
		input:    ta,
		titleCSS: lipgloss.NewStyle().Bold(true),
		hintCSS:  lipgloss.NewStyle().Faint(true),
	}
}

// ID returns the component id used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Open clears the text, sets the heading and focuses the input.
func (m *Model) Open(title string) tea.Cmd {
	m.title = title
	m.hint = ""
	m.input.Reset()
	return m.input.Focus()
}

// Blur stops accepting keys.
func (m *Model) Blur() {
	m.input.Blur()
}

// Value is the current text.
func (m *Model) Value() string {
	return m.input.Value()
}

// SetSize lays out the text area below the heading.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(max(width, 10))
	m.input.SetHeight(max(height-3, 3))
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "ctrl+s":
			content := m.input.Value()
			if strings.TrimSpace(content) == "" {
				m.hint = "Please write something before saving."
				return m, nil
			}
			return m, events.SubmitEntryCmd(m.id, content)
		case "esc":
			return m, events.CancelCmd(m.id)
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	parts := []string{m.titleCSS.Render(m.title), m.input.View()}
	if m.hint != "" {
		parts = append(parts, m.hintCSS.Render(m.hint))
	} else {
		parts = append(parts, m.hintCSS.Render("ctrl+s save · esc cancel"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
