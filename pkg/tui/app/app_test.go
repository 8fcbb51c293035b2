package teaui

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/settings"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/tui/events"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type fakeService struct {
	today    entry.Date
	text     string
	settings settings.AppSettings
	saved    []string
}

func (f *fakeService) Today() entry.Date { return f.today }

func (f *fakeService) Home(_ context.Context, ref entry.Date) (*app.Home, error) {
	h := &app.Home{Date: ref, EntryDays: map[int]bool{}, History: journal.OnThisDay(f.text, ref)}
	for _, e := range journal.Parse(f.text) {
		if e.Date.Year == ref.Year && e.Date.Month == ref.Month {
			h.EntryDays[e.Date.Day] = true
		}
		if e.Date == ref {
			h.WrittenToday = true
		}
	}
	return h, nil
}

func (f *fakeService) Log(context.Context) (string, error) { return f.text, nil }

func (f *fakeService) Add(_ context.Context, content string) (journal.Appended, error) {
	out, err := journal.Append(f.today, content, f.text)
	if err != nil {
		return out, err
	}
	f.text = out.Log
	f.saved = append(f.saved, out.Entry)
	return out, nil
}

func (f *fakeService) LoadSettings() (settings.AppSettings, error) { return f.settings, nil }

func (f *fakeService) UpdateSettings(_ context.Context, change func(*settings.AppSettings)) (settings.ReminderAction, error) {
	next := f.settings
	change(&next)
	action := settings.Plan(f.settings, next)
	f.settings = next
	return action, nil
}

func (f *fakeService) Watch(context.Context) (<-chan store.Event, error) {
	return nil, errors.New("not watchable")
}

func newModel(t *testing.T, text string) (*Model, *fakeService) {
	t.Helper()
	svc := &fakeService{
		today:    entry.Date{Year: 2024, Month: time.June, Day: 15},
		text:     text,
		settings: settings.Defaults("/data"),
	}
	m := New(context.Background(), svc)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(m.loadHome()())
	return m, svc
}

// run feeds msg to the model and then every message its commands produce.
func run(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	for cmd != nil {
		next := cmd()
		if next == nil {
			return
		}
		_, cmd = m.Update(next)
	}
}

func key(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestHomeShowsOnThisDay(t *testing.T) {
	log := "2023-06-15 h | picnic by the river\n\n2024-06-01 s | june starts"
	m, _ := newModel(t, log)

	view := stripANSI(m.View())
	for _, want := range []string{"Saturday, June 15, 2024", "June 2024", "On this day", "2023 (1 year ago)", "picnic by the river"} {
		if !strings.Contains(view, want) {
			t.Fatalf("home view missing %q:\n%s", want, view)
		}
	}
	if !strings.Contains(view, "No entry yet today") {
		t.Fatalf("expected prompt to write today")
	}
}

func TestComposeAndSave(t *testing.T) {
	m, svc := newModel(t, "")

	// The composer's focus command starts a cursor blink loop, so it is
	// not run here.
	m.Update(key("a"))
	if m.screen != screenCompose {
		t.Fatalf("expected compose screen, got %v", m.screen)
	}
	run(m, events.SubmitEntryMsg{Component: composerID, Content: "  first entry  "})

	if len(svc.saved) != 1 || svc.saved[0] != "2024-06-15 s | first entry" {
		t.Fatalf("unexpected saves: %v", svc.saved)
	}
	if m.screen != screenHome {
		t.Fatalf("expected to return home")
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "You have written today.") {
		t.Fatalf("expected written marker:\n%s", view)
	}
	if !strings.Contains(view, "Saved 2024-06-15 s") {
		t.Fatalf("expected saved status:\n%s", view)
	}
}

func TestNavigateDays(t *testing.T) {
	m, _ := newModel(t, "2020-06-14 x | sunday")

	run(m, tea.KeyPressMsg{Code: tea.KeyLeft})
	if m.selected != (entry.Date{Year: 2024, Month: time.June, Day: 14}) {
		t.Fatalf("selected = %s", m.selected)
	}
	if !strings.Contains(stripANSI(m.View()), "sunday") {
		t.Fatalf("expected the 2020 entry for June 14")
	}
	run(m, key("t"))
	if m.selected != m.svc.Today() {
		t.Fatalf("expected to return to today")
	}
}

func TestSettingsSave(t *testing.T) {
	m, svc := newModel(t, "")

	run(m, key("s"))
	if m.screen != screenSettings {
		t.Fatalf("expected settings screen")
	}
	run(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	run(m, key("s"))

	if !svc.settings.NotificationsEnabled {
		t.Fatalf("expected notifications to be saved")
	}
	if m.screen != screenHome || !strings.Contains(m.status, "schedule") {
		t.Fatalf("unexpected state: screen=%v status=%q", m.screen, m.status)
	}
}

func TestErrorsShowInFooter(t *testing.T) {
	m, _ := newModel(t, "")
	m.Update(entrySavedMsg{err: journal.ErrResourceUnavailable})
	if !strings.Contains(stripANSI(m.View()), "resource unavailable") {
		t.Fatalf("expected error in footer")
	}
}
