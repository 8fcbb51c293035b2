package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestLogFileWatchEmitsChanges(t *testing.T) {
	base := t.TempDir()
	f, err := NewLogFile(filepath.Join(base, "journal.md"))
	if err != nil {
		t.Fatalf("new log file: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := f.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := f.WriteAll(ctx, "2024-06-03 m | hello"); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Path != f.Path() {
				t.Fatalf("expected path %q, got %q", f.Path(), evt.Path)
			}
			return
		case <-deadline:
			t.Fatal("timed out waiting for journal change event")
		}
	}
}

func TestEventThrottleCoalesces(t *testing.T) {
	th := newEventThrottle(20 * time.Millisecond)
	defer th.Stop()

	got := make(chan Event, 8)
	send := func(ev Event) { got <- ev }
	for i := 0; i < 5; i++ {
		th.Enqueue(Event{Type: EventLogChanged, Path: "a"}, send)
	}

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for flush")
	}
	select {
	case ev := <-got:
		t.Fatalf("expected a single event, got another %#v", ev)
	case <-time.After(60 * time.Millisecond):
	}
}
