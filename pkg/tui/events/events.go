// Package events defines the messages passed between daybook's TUI
// components and the root model.
package events

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/settings"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// SubmitEntryMsg is emitted when the composer saves its text.
type SubmitEntryMsg struct {
	Component ComponentID
	Content   string
}

// CancelMsg is emitted when a component is dismissed without saving.
type CancelMsg struct {
	Component ComponentID
}

// SaveSettingsMsg carries the edited settings from the settings view.
type SaveSettingsMsg struct {
	Component ComponentID
	Settings  settings.AppSettings
}

// JournalChangedMsg reports that the journal file changed on disk.
type JournalChangedMsg struct {
	Path string
}

// SubmitEntryCmd wraps SubmitEntryMsg in a command.
func SubmitEntryCmd(id ComponentID, content string) tea.Cmd {
	return func() tea.Msg {
		return SubmitEntryMsg{Component: id, Content: content}
	}
}

// CancelCmd wraps CancelMsg in a command.
func CancelCmd(id ComponentID) tea.Cmd {
	return func() tea.Msg {
		return CancelMsg{Component: id}
	}
}

// SaveSettingsCmd wraps SaveSettingsMsg in a command.
func SaveSettingsCmd(id ComponentID, s settings.AppSettings) tea.Cmd {
	return func() tea.Msg {
		return SaveSettingsMsg{Component: id, Settings: s}
	}
}
