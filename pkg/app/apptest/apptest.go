// Package apptest builds app.Services backed by memory for tests.
package apptest

import (
	"context"
	"sync"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/settings"
)

// Journal is an in-memory journal.Resource.
type Journal struct {
	mu     sync.Mutex
	text   string
	Writes int
}

func (j *Journal) ReadAll(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.text, nil
}

func (j *Journal) WriteAll(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Writes++
	j.text = text
	return nil
}

// Text returns the current journal content.
func (j *Journal) Text() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.text
}

// Settings is an in-memory app.SettingsStore.
type Settings struct {
	mu  sync.Mutex
	cur settings.AppSettings
}

func (s *Settings) Load() (settings.AppSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur, nil
}

func (s *Settings) Save(next settings.AppSettings) error {
	if err := next.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = next
	return nil
}

// New returns a service over text whose clock is fixed at now.
func New(t testing.TB, text string, now time.Time) (*app.Service, *Journal, *Settings) {
	t.Helper()
	j := &Journal{text: text}
	st := &Settings{cur: settings.Defaults(t.TempDir())}
	svc := &app.Service{
		Settings: st,
		Open:     func(string) (journal.Resource, error) { return j, nil },
		Now:      func() time.Time { return now },
	}
	return svc, j, st
}
