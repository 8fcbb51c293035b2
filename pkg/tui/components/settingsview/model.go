// Package settingsview edits the reminder and journal location settings.
package settingsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/settings"
	"tableflip.dev/daybook/pkg/timeutil"
	"tableflip.dev/daybook/pkg/tui/events"
)

const (
	rowNotifications = iota
	rowTime
	rowPath
	rowCount
)

var labels = [rowCount]string{
	rowNotifications: "Daily reminder",
	rowTime:          "Reminder time",
	rowPath:          "Journal file",
}

// Model holds a draft of the settings until it is saved.
type Model struct {
	id      events.ComponentID
	draft   settings.AppSettings
	cursor  int
	editing bool
	input   textinput.Model
	problem string
	width   int

	label    lipgloss.Style
	selected lipgloss.Style
	faint    lipgloss.Style
	errStyle lipgloss.Style
}

// New builds the view.
func New(id events.ComponentID) *Model {
	return &Model{
		id:       id,
		input:    textinput.New(),
		label:    lipgloss.NewStyle().Width(16),
		selected: lipgloss.NewStyle().Reverse(true),
		faint:    lipgloss.NewStyle().Faint(true),
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// ID returns the component id used in emitted events.
func (m *Model) ID() events.ComponentID { return m.id }

// Load starts a new draft from the saved settings.
func (m *Model) Load(s settings.AppSettings) {
	m.draft = s
	m.cursor = rowNotifications
	m.editing = false
	m.problem = ""
	m.input.Blur()
}

// Draft is the settings as currently edited.
func (m *Model) Draft() settings.AppSettings { return m.draft }

// Editing reports whether a text field has focus.
func (m *Model) Editing() bool { return m.editing }

// SetProblem shows an error from saving.
func (m *Model) SetProblem(msg string) { m.problem = msg }

func (m *Model) SetWidth(w int) {
	m.width = w
	m.input.SetWidth(max(w-20, 10))
}

func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.editing {
		return m.updateEditing(key)
	}
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < rowCount-1 {
			m.cursor++
		}
	case "enter", "space", " ":
		return m, m.activate()
	case "s", "ctrl+s":
		if err := m.draft.Validate(); err != nil {
			m.problem = err.Error()
			return m, nil
		}
		return m, events.SaveSettingsCmd(m.id, m.draft)
	case "esc", "q":
		return m, events.CancelCmd(m.id)
	}
	return m, nil
}

func (m *Model) activate() tea.Cmd {
	m.problem = ""
	switch m.cursor {
	case rowNotifications:
		m.draft.NotificationsEnabled = !m.draft.NotificationsEnabled
		return nil
	case rowTime:
		m.input.SetValue(m.draft.NotificationTime)
	case rowPath:
		m.input.SetValue(m.draft.JournalPath)
	}
	m.editing = true
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) updateEditing(key tea.KeyPressMsg) (*Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.editing = false
		m.problem = ""
		m.input.Blur()
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		switch m.cursor {
		case rowTime:
			if _, err := timeutil.ParseClock(value); err != nil {
				m.problem = "Use a 24 hour time like 09:00."
				return m, nil
			}
			m.draft.NotificationTime = value
		case rowPath:
			if value == "" {
				m.problem = "A journal file is required."
				return m, nil
			}
			m.draft.JournalPath = value
		}
		m.editing = false
		m.problem = ""
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Model) View() string {
	values := [rowCount]string{
		rowNotifications: onOff(m.draft.NotificationsEnabled),
		rowTime:          m.draft.NotificationTime,
		rowPath:          m.draft.JournalPath,
	}
	lines := make([]string, 0, rowCount+2)
	for i := 0; i < rowCount; i++ {
		value := values[i]
		if m.editing && i == m.cursor {
			value = m.input.View()
		}
		line := fmt.Sprintf("%s %s", m.label.Render(labels[i]), value)
		if i == m.cursor && !m.editing {
			line = m.selected.Render(line)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "")
	if m.problem != "" {
		lines = append(lines, m.errStyle.Render(m.problem))
	} else if m.editing {
		lines = append(lines, m.faint.Render("enter keep · esc discard"))
	} else {
		lines = append(lines, m.faint.Render("enter change · s save · esc back"))
	}
	return strings.Join(lines, "\n")
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
