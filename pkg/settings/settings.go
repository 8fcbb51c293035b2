// Package settings holds the user's reminder preferences and journal
// location, and works out what has to happen to reminders when they change.
package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"tableflip.dev/daybook/pkg/timeutil"
)

const (
	// DefaultNotificationTime is used until the user picks a time.
	DefaultNotificationTime = "09:00"
	// DefaultJournalFile is created inside the data directory.
	DefaultJournalFile = "journal.md"
)

// AppSettings is persisted as JSON.
type AppSettings struct {
	NotificationsEnabled bool   `json:"notificationsEnabled" yaml:"notificationsEnabled"`
	NotificationTime     string `json:"notificationTime" yaml:"notificationTime"`
	JournalPath          string `json:"journalFilePath" yaml:"journalFilePath"`
}

// Defaults returns the settings for a fresh install rooted at dataDir.
func Defaults(dataDir string) AppSettings {
	return AppSettings{
		NotificationsEnabled: false,
		NotificationTime:     DefaultNotificationTime,
		JournalPath:          filepath.Join(dataDir, DefaultJournalFile),
	}
}

// Validate checks the reminder time and that a journal path is set.
func (s AppSettings) Validate() error {
	var errs []error
	if _, err := timeutil.ParseClock(s.NotificationTime); err != nil {
		errs = append(errs, fmt.Errorf("settings: notification time: %w", err))
	}
	if strings.TrimSpace(s.JournalPath) == "" {
		errs = append(errs, errors.New("settings: journal file path is required"))
	}
	return errors.Join(errs...)
}

// Clock returns the parsed reminder time.
func (s AppSettings) Clock() (timeutil.Clock, error) {
	return timeutil.ParseClock(s.NotificationTime)
}
