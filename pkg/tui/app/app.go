// Package teaui hosts the Bubble Tea program for the daybook TUI.
package teaui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/settings"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/tui/components/calendar"
	"tableflip.dev/daybook/pkg/tui/components/composer"
	"tableflip.dev/daybook/pkg/tui/components/logview"
	"tableflip.dev/daybook/pkg/tui/components/panel"
	"tableflip.dev/daybook/pkg/tui/components/settingsview"
	"tableflip.dev/daybook/pkg/tui/events"
	"tableflip.dev/daybook/pkg/tui/theme"
)

// Service is what the TUI needs from the journal.
type Service interface {
	Today() entry.Date
	Home(ctx context.Context, ref entry.Date) (*app.Home, error)
	Log(ctx context.Context) (string, error)
	Add(ctx context.Context, content string) (journal.Appended, error)
	LoadSettings() (settings.AppSettings, error)
	UpdateSettings(ctx context.Context, change func(*settings.AppSettings)) (settings.ReminderAction, error)
	Watch(ctx context.Context) (<-chan store.Event, error)
}

var _ Service = (*app.Service)(nil)

type screen int

const (
	screenHome screen = iota
	screenCompose
	screenLog
	screenSettings
)

const (
	composerID events.ComponentID = "composer"
	settingsID events.ComponentID = "settings"
)

type homeLoadedMsg struct {
	home *app.Home
	err  error
}

type logLoadedMsg struct {
	text string
	err  error
}

type entrySavedMsg struct {
	out journal.Appended
	err error
}

type settingsLoadedMsg struct {
	settings settings.AppSettings
	err      error
}

type settingsSavedMsg struct {
	action settings.ReminderAction
	err    error
}

type watchStartedMsg struct {
	events <-chan store.Event
	err    error
}

// Model is the root of the TUI.
type Model struct {
	svc Service
	ctx context.Context

	screen   screen
	selected entry.Date
	home     *app.Home

	width  int
	height int

	changes <-chan store.Event

	composer *composer.Model
	log      *logview.Model
	settings *settingsview.Model

	status  string
	failure string
	theme   theme.Theme
}

// New builds the root model showing today.
func New(ctx context.Context, svc Service) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Model{
		svc:      svc,
		ctx:      ctx,
		selected: svc.Today(),
		composer: composer.New(composerID),
		log:      logview.New(80, 20),
		settings: settingsview.New(settingsID),
		theme:    theme.Default(),
	}
}

// Run launches the interactive TUI program.
func Run(ctx context.Context, svc Service) error {
	p := tea.NewProgram(New(ctx, svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init loads the home screen and starts watching the journal file.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadHome(), m.startWatch())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.applySizes()
		return m, nil
	case tea.KeyPressMsg:
		if v.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case homeLoadedMsg:
		if v.err != nil {
			m.failure = v.err.Error()
			return m, nil
		}
		m.failure = ""
		m.home = v.home
		return m, nil
	case logLoadedMsg:
		if v.err != nil {
			m.failure = v.err.Error()
			return m, nil
		}
		m.log.SetText(v.text)
		return m, nil
	case entrySavedMsg:
		if v.err != nil {
			m.failure = v.err.Error()
			return m, nil
		}
		m.screen = screenHome
		m.composer.Blur()
		m.selected = m.svc.Today()
		m.status = "Saved " + strings.TrimSuffix(journal.Prefix(m.selected), " | ")
		return m, m.loadHome()
	case settingsLoadedMsg:
		if v.err != nil {
			m.failure = v.err.Error()
		}
		m.settings.Load(v.settings)
		m.screen = screenSettings
		return m, nil
	case settingsSavedMsg:
		if v.err != nil {
			m.settings.SetProblem(v.err.Error())
			return m, nil
		}
		m.screen = screenHome
		m.status = "Settings saved"
		if v.action != settings.ReminderNone {
			m.status += fmt.Sprintf(" (reminder: %s)", v.action)
		}
		return m, m.loadHome()
	case watchStartedMsg:
		if v.err != nil {
			// Watching is best effort; the journal still works without it.
			return m, nil
		}
		m.changes = v.events
		return m, waitForChange(m.changes)
	case events.JournalChangedMsg:
		cmds := []tea.Cmd{m.loadHome(), waitForChange(m.changes)}
		if m.screen == screenLog {
			cmds = append(cmds, m.loadLog())
		}
		return m, tea.Batch(cmds...)
	case events.SubmitEntryMsg:
		if v.Component == composerID {
			return m, m.save(v.Content)
		}
	case events.SaveSettingsMsg:
		if v.Component == settingsID {
			return m, m.saveSettings(v.Settings)
		}
	case events.CancelMsg:
		m.composer.Blur()
		m.screen = screenHome
		return m, nil
	}

	switch m.screen {
	case screenCompose:
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		return m, cmd
	case screenSettings:
		var cmd tea.Cmd
		m.settings, cmd = m.settings.Update(msg)
		return m, cmd
	case screenLog:
		if key, ok := msg.(tea.KeyPressMsg); ok {
			switch key.String() {
			case "esc", "q":
				m.screen = screenHome
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.log, cmd = m.log.Update(msg)
		return m, cmd
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		return m, m.handleHomeKey(key)
	}
	return m, nil
}

func (m *Model) handleHomeKey(key tea.KeyPressMsg) tea.Cmd {
	m.status = ""
	switch key.String() {
	case "q":
		return tea.Quit
	case "a", "n", "enter":
		m.screen = screenCompose
		today := m.svc.Today()
		return m.composer.Open("New entry for " + today.Time(nil).Format("Monday, January 2, 2006"))
	case "l":
		m.screen = screenLog
		return m.loadLog()
	case "s":
		return m.loadSettings()
	case "left", "h":
		return m.selectDate(calendar.Shift(m.selected, -1))
	case "right":
		return m.selectDate(calendar.Shift(m.selected, 1))
	case "up", "k":
		return m.selectDate(calendar.Shift(m.selected, -7))
	case "down", "j":
		return m.selectDate(calendar.Shift(m.selected, 7))
	case "t":
		return m.selectDate(m.svc.Today())
	case "r":
		return m.loadHome()
	}
	return nil
}

func (m *Model) selectDate(d entry.Date) tea.Cmd {
	if !d.Valid() {
		return nil
	}
	m.selected = d
	return m.loadHome()
}

func (m *Model) loadHome() tea.Cmd {
	svc, ctx, ref := m.svc, m.ctx, m.selected
	return func() tea.Msg {
		h, err := svc.Home(ctx, ref)
		return homeLoadedMsg{home: h, err: err}
	}
}

func (m *Model) loadLog() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		text, err := svc.Log(ctx)
		return logLoadedMsg{text: text, err: err}
	}
}

func (m *Model) loadSettings() tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		s, err := svc.LoadSettings()
		return settingsLoadedMsg{settings: s, err: err}
	}
}

func (m *Model) save(content string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		out, err := svc.Add(ctx, content)
		return entrySavedMsg{out: out, err: err}
	}
}

func (m *Model) saveSettings(next settings.AppSettings) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		action, err := svc.UpdateSettings(ctx, func(s *settings.AppSettings) {
			*s = next
		})
		return settingsSavedMsg{action: action, err: err}
	}
}

func (m *Model) startWatch() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		ch, err := svc.Watch(ctx)
		return watchStartedMsg{events: ch, err: err}
	}
}

// waitForChange blocks for the next write to the journal. It returns nil
// once the watch ends.
func waitForChange(ch <-chan store.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		for ev := range ch {
			if ev.Type == store.EventLogChanged {
				return events.JournalChangedMsg{Path: ev.Path}
			}
		}
		return nil
	}
}

func (m *Model) applySizes() {
	if m.width == 0 || m.height == 0 {
		return
	}
	body := max(m.height-3, 6)
	m.composer.SetSize(m.width-2, body)
	m.log.SetSize(m.width, body)
	m.settings.SetWidth(m.width)
}

// View renders the active screen with a footer.
func (m *Model) View() string {
	var body string
	switch m.screen {
	case screenCompose:
		body = m.composer.View()
	case screenLog:
		body = m.log.View()
	case screenSettings:
		p := panel.New(m.theme.Panel)
		p.SetContent("Settings", []string{"", m.settings.View()})
		body, _ = p.View()
	default:
		body = m.homeView()
	}
	return body + "\n" + m.footer()
}

func (m *Model) homeView() string {
	heading := m.theme.Panel.Title.Render(m.selected.Time(nil).Format("Monday, January 2, 2006"))

	month := calendar.Month{Selected: m.selected, Today: m.svc.Today()}
	if m.home != nil {
		month.EntryDays = m.home.EntryDays
	}
	left := m.theme.Panel.Frame.Render(calendar.Render(month, calendar.DefaultOptions()))

	history := panel.New(m.theme.Panel)
	history.SetWidth(max(m.width-lipgloss.Width(left)-1, 24))
	history.SetContent("On this day", m.historyLines(history.InnerWidth()))
	right, _ := history.View()

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	return heading + "\n" + m.todayLine() + "\n\n" + body
}

func (m *Model) todayLine() string {
	if m.selected != m.svc.Today() {
		return m.theme.Footer.Status.Render("Press t to return to today.")
	}
	if m.home != nil && m.home.WrittenToday {
		return m.theme.Footer.Status.Render("You have written today.")
	}
	return m.theme.Footer.Status.Render("No entry yet today. Press a to write one.")
}

func (m *Model) historyLines(width int) []string {
	if m.home == nil || len(m.home.History) == 0 {
		return []string{m.theme.Entry.Empty.Render("Nothing from earlier years.")}
	}
	var lines []string
	for _, e := range m.home.History {
		years := m.selected.Year - e.Date.Year
		label := fmt.Sprintf("%d (%d year", e.Date.Year, years)
		if years != 1 {
			label += "s"
		}
		label += " ago)"
		lines = append(lines, "", m.theme.Entry.Date.Render(label))
		lines = append(lines, m.theme.Entry.Content.Render(wordwrap.String(e.Content, max(width, 10))))
	}
	return lines
}

func (m *Model) footer() string {
	if m.failure != "" {
		return m.theme.Footer.Error.Render(m.failure)
	}
	help := ""
	switch m.screen {
	case screenHome:
		help = "a write · l log · s settings · ←/→ day · ↑/↓ week · t today · q quit"
	case screenLog:
		help = "↑/↓ scroll · esc back"
	}
	parts := make([]string, 0, 2)
	if m.status != "" {
		parts = append(parts, m.theme.Footer.Status.Render(m.status))
	}
	if help != "" {
		parts = append(parts, m.theme.Footer.Help.Render(help))
	}
	return strings.Join(parts, "  ")
}
