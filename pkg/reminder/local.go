// Package reminder delivers the daily "write in your journal" nudge while a
// daybook process is running.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/settings"
	"tableflip.dev/daybook/pkg/timeutil"
)

const (
	Title = "Time for your daily journal!"
	Body  = "Open daybook to write down your thoughts and experiences."
)

// Local fires a reminder once a day at the scheduled clock time from a
// background goroutine. Only one reminder is scheduled at a time.
type Local struct {
	// Notify is called when the reminder fires. It defaults to printing to
	// color.Output with a terminal bell.
	Notify func(at time.Time)
	// Now and After are overridden in tests.
	Now   func() time.Time
	After func(d time.Duration) <-chan time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	next   time.Time
}

var _ settings.Scheduler = (*Local)(nil)

// Schedule starts the daily reminder at the given time. Any reminder that
// was already scheduled is replaced.
func (l *Local) Schedule(ctx context.Context, at timeutil.Clock) error {
	if err := l.Cancel(ctx); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	l.cancel = cancel
	l.done = done
	l.next = at.NextFire(l.now())

	go l.run(runCtx, at, done)
	return nil
}

// Cancel stops the scheduled reminder and waits for its goroutine to exit.
func (l *Local) Cancel(ctx context.Context) error {
	l.mu.Lock()
	cancel, done := l.cancel, l.done
	l.cancel, l.done = nil, nil
	l.next = time.Time{}
	l.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Next reports when the reminder fires next, and false when none is
// scheduled.
func (l *Local) Next() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next, !l.next.IsZero()
}

// Wait blocks until the scheduled reminder is cancelled or ctx is done.
func (l *Local) Wait(ctx context.Context) error {
	l.mu.Lock()
	done := l.done
	l.mu.Unlock()
	if done == nil {
		return errors.New("reminder: nothing scheduled")
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Local) run(ctx context.Context, at timeutil.Clock, done chan struct{}) {
	defer close(done)
	for {
		now := l.now()
		fire := at.NextFire(now)
		l.setNext(fire)
		select {
		case <-ctx.Done():
			return
		case <-l.after(fire.Sub(now)):
			l.notify(fire)
		}
	}
}

func (l *Local) setNext(t time.Time) {
	l.mu.Lock()
	if l.cancel != nil {
		l.next = t
	}
	l.mu.Unlock()
}

func (l *Local) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *Local) after(d time.Duration) <-chan time.Time {
	if l.After != nil {
		return l.After(d)
	}
	return time.After(d)
}

func (l *Local) notify(at time.Time) {
	if l.Notify != nil {
		l.Notify(at)
		return
	}
	Print(color.Output, at)
}

// Print writes the reminder text with a terminal bell.
func Print(w io.Writer, at time.Time) {
	bold := color.New(color.Bold)
	_, _ = fmt.Fprint(w, "\a")
	_, _ = bold.Fprintf(w, "%s %s\n", at.Format("15:04"), Title)
	_, _ = fmt.Fprintln(w, Body)
}
