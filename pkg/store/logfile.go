// Package store persists the journal file and the app settings.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"tableflip.dev/daybook/pkg/journal"
)

const defaultFilePerm = 0o644

// LogFile is a journal.Resource backed by a single file on disk.
type LogFile struct {
	path string
}

var _ journal.Resource = (*LogFile)(nil)

// NewLogFile returns a LogFile for path. A leading ~ is expanded.
func NewLogFile(path string) (*LogFile, error) {
	if path == "" {
		return nil, errors.New("store: journal path required")
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("store: expand %s: %w", path, err)
	}
	return &LogFile{path: filepath.Clean(expanded)}, nil
}

// Path is the expanded file path.
func (f *LogFile) Path() string {
	return f.path
}

// ReadAll returns the whole journal. A missing file reads as empty.
func (f *LogFile) ReadAll(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", unavailable("read", f.path, err)
	}
	return string(data), nil
}

// WriteAll replaces the journal with text, creating parent directories as
// needed. The existing file mode is kept.
func (f *LogFile) WriteAll(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	perm := os.FileMode(defaultFilePerm)
	if info, err := os.Stat(f.path); err == nil {
		if info.IsDir() {
			return unavailable("write", f.path, errors.New("is a directory"))
		}
		perm = info.Mode().Perm()
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return unavailable("write", f.path, err)
	}
	if err := writeFileAtomic(f.path, []byte(text), perm); err != nil {
		return unavailable("write", f.path, err)
	}
	return nil
}

// AbsJournalPath expands a leading ~ and makes path absolute against the
// working directory, so a stored path names the same file from anywhere.
func AbsJournalPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("store: journal path required")
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("store: expand %s: %w", path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("store: resolve %s: %w", path, err)
	}
	return abs, nil
}

// CheckJournalPath accepts a path that does not exist yet or that names a
// regular file. Directories and unreadable paths are rejected.
func CheckJournalPath(path string) error {
	expanded, err := AbsJournalPath(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(expanded)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return unavailable("stat", expanded, err)
	case !info.Mode().IsRegular():
		return fmt.Errorf("store: %s is not a regular file", expanded)
	default:
		return nil
	}
}

func unavailable(op, path string, err error) error {
	return fmt.Errorf("store: %s %s: %w: %w", op, path, journal.ErrResourceUnavailable, err)
}
