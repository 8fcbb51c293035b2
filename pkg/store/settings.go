package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daybook/pkg/settings"
)

const appSettingsKey = "appSettings"

// Settings keeps AppSettings in a small diskv key/value store.
type Settings struct {
	d       *diskv.Diskv
	dataDir string
}

// OpenSettings opens (and creates) the settings store under dataDir.
func OpenSettings(dataDir string) (*Settings, error) {
	if dataDir == "" {
		return nil, errors.New("store: data directory required")
	}
	expanded, err := homedir.Expand(dataDir)
	if err != nil {
		return nil, fmt.Errorf("store: expand %s: %w", dataDir, err)
	}
	base := filepath.Join(expanded, "settings")
	tmp := filepath.Join(expanded, "tmp")
	for _, dir := range []string{base, tmp} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: ensure %s: %w", dir, err)
		}
	}
	return &Settings{
		d: diskv.New(diskv.Options{
			BasePath:     base,
			TempDir:      tmp,
			CacheSizeMax: 64 * 1024,
		}),
		dataDir: expanded,
	}, nil
}

// DataDir is the expanded directory the store was opened in.
func (s *Settings) DataDir() string {
	return s.dataDir
}

// Load returns the stored settings, or the defaults when nothing was saved.
// A stored value that cannot be decoded also yields the defaults, together
// with the decode error.
func (s *Settings) Load() (settings.AppSettings, error) {
	defaults := settings.Defaults(s.dataDir)
	if !s.d.Has(appSettingsKey) {
		return defaults, nil
	}
	val, err := s.d.Read(appSettingsKey)
	if err != nil {
		return defaults, fmt.Errorf("store: read settings: %w", err)
	}
	loaded := defaults
	if err := json.Unmarshal(val, &loaded); err != nil {
		return defaults, fmt.Errorf("store: decode settings: %w", err)
	}
	if loaded.NotificationTime == "" {
		loaded.NotificationTime = defaults.NotificationTime
	}
	if loaded.JournalPath == "" {
		loaded.JournalPath = defaults.JournalPath
	}
	return loaded, nil
}

// Save validates and persists next.
func (s *Settings) Save(next settings.AppSettings) error {
	if err := next.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := s.d.Write(appSettingsKey, data); err != nil {
		return fmt.Errorf("store: write settings: %w", err)
	}
	return nil
}
