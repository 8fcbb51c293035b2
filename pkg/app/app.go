package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/settings"
	"tableflip.dev/daybook/pkg/store"
)

// SettingsStore loads and saves the app settings.
type SettingsStore interface {
	Load() (settings.AppSettings, error)
	Save(settings.AppSettings) error
}

// Watcher is implemented by resources that can report external edits.
type Watcher interface {
	Watch(ctx context.Context) (<-chan store.Event, error)
}

// Service provides the journal operations shared by the CLI and the TUI.
// Every call re-reads the journal; nothing is cached between calls.
type Service struct {
	Settings SettingsStore
	// Scheduler, when set, is updated as reminder settings change.
	Scheduler settings.Scheduler
	// PathOverride replaces the journal path from settings, e.g. from
	// DAYBOOK_PATH or --file.
	PathOverride string
	// Open returns the resource for a journal path. Defaults to a file.
	Open func(path string) (journal.Resource, error)
	// Now is the reference clock. Defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

var errNoSettings = errors.New("app: no settings configured")

// Today is the current calendar day.
func (s *Service) Today() entry.Date {
	return entry.DateOf(s.now())
}

// JournalPath resolves which journal file is in use.
func (s *Service) JournalPath() (string, error) {
	if s.PathOverride != "" {
		return s.PathOverride, nil
	}
	cfg, err := s.loadSettings()
	if err != nil {
		return "", err
	}
	return cfg.JournalPath, nil
}

// Resource opens the journal currently in use.
func (s *Service) Resource() (journal.Resource, error) {
	path, err := s.JournalPath()
	if err != nil {
		return nil, err
	}
	open := s.Open
	if open == nil {
		open = func(p string) (journal.Resource, error) { return store.NewLogFile(p) }
	}
	return open(path)
}

// Add appends content as today's entry.
func (s *Service) Add(ctx context.Context, content string) (journal.Appended, error) {
	res, err := s.Resource()
	if err != nil {
		return journal.Appended{}, err
	}
	today := s.Today()
	out, err := journal.AppendTo(ctx, res, today, content)
	if err != nil {
		return journal.Appended{}, err
	}
	s.log().Debug("entry saved", "date", today.String(), "bytes", len(out.Entry))
	return out, nil
}

// Log returns the raw journal text.
func (s *Service) Log(ctx context.Context) (string, error) {
	res, err := s.Resource()
	if err != nil {
		return "", err
	}
	return res.ReadAll(ctx)
}

// Entries returns every parsable entry in log order.
func (s *Service) Entries(ctx context.Context) ([]*entry.Entry, error) {
	text, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	return s.parser().Parse(text), nil
}

// OnThisDay returns earlier years' entries for ref's month and day, newest
// first.
func (s *Service) OnThisDay(ctx context.Context, ref entry.Date) ([]*entry.Entry, error) {
	text, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	return s.parser().OnThisDay(text, ref), nil
}

// Home gathers what the home view shows for ref.
func (s *Service) Home(ctx context.Context, ref entry.Date) (*Home, error) {
	text, err := s.Log(ctx)
	if err != nil {
		return nil, err
	}
	p := s.parser()
	h := &Home{
		Date:      ref,
		EntryDays: make(map[int]bool),
		History:   p.OnThisDay(text, ref),
	}
	for _, e := range p.Parse(text) {
		if e.Date.Year == ref.Year && e.Date.Month == ref.Month {
			h.EntryDays[e.Date.Day] = true
		}
		if e.Date == ref {
			h.WrittenToday = true
		}
	}
	return h, nil
}

// Watch reports external changes to the journal when the resource
// supports it.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	res, err := s.Resource()
	if err != nil {
		return nil, err
	}
	w, ok := res.(Watcher)
	if !ok {
		return nil, fmt.Errorf("app: %T cannot be watched", res)
	}
	return w.Watch(ctx)
}

func (s *Service) parser() journal.Parser {
	logger := s.log()
	return journal.Parser{OnSkip: func(err *journal.MalformedBlockError) {
		logger.Debug("skipping journal block", "block", err.Index+1, "reason", err.Reason)
	}}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Home is the data behind the home view.
type Home struct {
	Date entry.Date `json:"date"`
	// EntryDays marks days of Date's month that have an entry.
	EntryDays    map[int]bool   `json:"entryDays"`
	WrittenToday bool           `json:"writtenToday"`
	History      []*entry.Entry `json:"onThisDay"`
}
