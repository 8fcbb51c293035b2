package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a journal change notification.
type EventType int

const (
	// EventLogChanged indicates the journal file was written, replaced or
	// removed.
	EventLogChanged EventType = iota

	// EventWatchError signals that the watcher reported an error; callers
	// should reload to be safe.
	EventWatchError
)

// Event is emitted by LogFile.Watch when the journal changes on disk.
type Event struct {
	Type EventType
	Path string
}

// Watch streams change events until ctx is cancelled. The parent directory
// is watched rather than the file so that editors which save by renaming a
// new file into place are still noticed. Callers should drain the channel;
// it is closed once ctx is done or the watcher fails.
func (f *LogFile) Watch(ctx context.Context) (<-chan Event, error) {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure journal directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	if err := watcher.Add(dir); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", dir, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer reloads the whole file anyway, so a dropped
				// event while one is pending loses nothing.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventWatchError, Path: f.path}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != f.path {
					continue
				}
				if evt.Op == fsnotify.Chmod {
					continue
				}
				throttle.Enqueue(Event{Type: EventLogChanged, Path: f.path}, send)
			}
		}
	}()

	return events, nil
}

// eventThrottle coalesces bursts of writes (temp file, rename, chmod) into a
// single notification.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]Event
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]Event),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = ev
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]Event)
	t.timer = nil
	t.mu.Unlock()

	for _, ev := range pending {
		send(ev)
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
