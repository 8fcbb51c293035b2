// Package logview shows the whole journal rendered as markdown inside a
// scrollable viewport.
package logview

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss/v2"
)

const emptyLog = "_Nothing written yet._"

// Style is the glamour standard style used for rendering, "dark" or "light".
var Style = "dark"

// Model renders the journal inside a bordered viewport.
type Model struct {
	viewport viewport.Model
	width    int
	height   int
	text     string

	frame lipgloss.Style
	err   error
}

// New constructs a log view sized to the provided bounds.
func New(width, height int) *Model {
	vp := viewport.New(
		viewport.WithWidth(max(width, 1)),
		viewport.WithHeight(max(height, 1)),
	)
	vp.MouseWheelEnabled = true
	m := &Model{
		viewport: vp,
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0),
	}
	m.SetSize(width, height)
	return m
}

// SetText replaces the journal text and scrolls to the newest entries.
func (m *Model) SetText(text string) {
	m.text = text
	m.render(m.innerWidth())
	m.viewport.GotoBottom()
}

// Err is the last rendering error, if any.
func (m *Model) Err() error { return m.err }

// Update forwards scrolling keys to the viewport.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	vp, cmd := m.viewport.Update(msg)
	m.viewport = vp
	return m, cmd
}

// View renders the log inside a rounded frame.
func (m *Model) View() string {
	return m.frame.Width(m.width).Height(m.height).Render(m.viewport.View())
}

// SetSize configures the dimensions and re-renders the markdown to fit.
func (m *Model) SetSize(width, height int) {
	minWidth, minHeight := 32, 6
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}
	if m.width == width && m.height == height {
		return
	}

	m.width = width
	m.height = height

	frameX := m.frame.GetHorizontalFrameSize()
	frameY := m.frame.GetVerticalFrameSize()

	m.viewport.SetWidth(max(width-frameX, 1))
	m.viewport.SetHeight(max(height-frameY, 1))

	m.render(m.innerWidth())
}

func (m *Model) innerWidth() int {
	return max(m.width-m.frame.GetHorizontalFrameSize(), 1)
}

func (m *Model) render(wrap int) {
	content, err := Render(m.text, wrap)
	m.err = err
	m.viewport.SetContent(content)
}

// Render turns journal text into terminal markdown at the given wrap
// width using Style.
func Render(text string, wrap int) (string, error) {
	return RenderStyle(text, wrap, Style)
}

// RenderStyle is Render with an explicit glamour style. When glamour fails
// the raw text is returned with the error.
func RenderStyle(text string, wrap int, style string) (string, error) {
	source := strings.TrimSpace(text)
	if source == "" {
		source = emptyLog
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(max(wrap, 10)),
	)
	if err != nil {
		return source, err
	}
	out, err := renderer.Render(source)
	if err != nil {
		return source, err
	}
	return out, nil
}
