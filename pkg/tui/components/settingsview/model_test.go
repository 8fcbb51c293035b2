package settingsview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/settings"
	"tableflip.dev/daybook/pkg/tui/events"
)

func press(m *Model, keys ...tea.KeyPressMsg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func TestToggleAndSave(t *testing.T) {
	m := New("settings")
	m.Load(settings.Defaults("/data"))

	m, _ = press(m, enter)
	if !m.Draft().NotificationsEnabled {
		t.Fatalf("expected notifications to toggle on")
	}
	_, cmd := press(m, tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd == nil {
		t.Fatalf("expected a save command")
	}
	msg, ok := cmd().(events.SaveSettingsMsg)
	if !ok || !msg.Settings.NotificationsEnabled {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestEditTimeRejectsInvalid(t *testing.T) {
	m := New("settings")
	m.Load(settings.Defaults("/data"))

	m, _ = press(m, down, enter)
	if !m.Editing() {
		t.Fatalf("expected edit mode")
	}
	m.input.SetValue("24:00")
	m, _ = press(m, enter)
	if !m.Editing() {
		t.Fatalf("invalid time should keep the field open")
	}
	m.input.SetValue("7:45")
	m, _ = press(m, enter)
	if m.Editing() || m.Draft().NotificationTime != "7:45" {
		t.Fatalf("expected 7:45 to be kept, got %q", m.Draft().NotificationTime)
	}
}

func TestEscDiscardsEdit(t *testing.T) {
	m := New("settings")
	m.Load(settings.Defaults("/data"))

	m, _ = press(m, down, down, enter)
	m.input.SetValue("")
	m, _ = press(m, esc)
	if m.Editing() || m.Draft().JournalPath != "/data/journal.md" {
		t.Fatalf("expected path to be unchanged, got %q", m.Draft().JournalPath)
	}
	_, cmd := press(m, esc)
	if _, ok := cmd().(events.CancelMsg); !ok {
		t.Fatalf("expected cancel")
	}
}
