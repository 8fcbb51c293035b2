package app

import (
	"context"
	"fmt"

	"tableflip.dev/daybook/pkg/settings"
	"tableflip.dev/daybook/pkg/store"
)

// LoadSettings returns the stored settings. A corrupt value is logged and
// the defaults are used instead.
func (s *Service) LoadSettings() (settings.AppSettings, error) {
	return s.loadSettings()
}

func (s *Service) loadSettings() (settings.AppSettings, error) {
	if s.Settings == nil {
		return settings.AppSettings{}, errNoSettings
	}
	cfg, err := s.Settings.Load()
	if err != nil {
		if cfg.JournalPath == "" {
			return cfg, err
		}
		s.log().Warn("using default settings", "err", err)
	}
	return cfg, nil
}

// UpdateSettings applies change to the stored settings, saves them and
// brings the reminder in line. The reminder action taken is returned.
func (s *Service) UpdateSettings(ctx context.Context, change func(*settings.AppSettings)) (settings.ReminderAction, error) {
	old, err := s.loadSettings()
	if err != nil {
		return settings.ReminderNone, err
	}
	next := old
	change(&next)
	if err := next.Validate(); err != nil {
		return settings.ReminderNone, err
	}
	if next.JournalPath != old.JournalPath {
		abs, err := store.AbsJournalPath(next.JournalPath)
		if err != nil {
			return settings.ReminderNone, err
		}
		next.JournalPath = abs
		if err := store.CheckJournalPath(next.JournalPath); err != nil {
			return settings.ReminderNone, err
		}
	}
	if err := s.Settings.Save(next); err != nil {
		return settings.ReminderNone, err
	}

	action := settings.Plan(old, next)
	s.log().Debug("settings saved", "reminder", action.String())
	if s.Scheduler == nil || action == settings.ReminderNone {
		return action, nil
	}
	if err := settings.Apply(ctx, s.Scheduler, action, next); err != nil {
		return action, fmt.Errorf("app: %s reminder: %w", action, err)
	}
	return action, nil
}

// SetNotifications turns the daily reminder on or off.
func (s *Service) SetNotifications(ctx context.Context, enabled bool) (settings.ReminderAction, error) {
	return s.UpdateSettings(ctx, func(a *settings.AppSettings) {
		a.NotificationsEnabled = enabled
	})
}

// SetNotificationTime changes the reminder time, given as HH:MM.
func (s *Service) SetNotificationTime(ctx context.Context, hhmm string) (settings.ReminderAction, error) {
	return s.UpdateSettings(ctx, func(a *settings.AppSettings) {
		a.NotificationTime = hhmm
	})
}

// SetJournalPath points the journal at a different file. Relative paths are
// resolved against the current directory before they are saved.
func (s *Service) SetJournalPath(ctx context.Context, path string) error {
	_, err := s.UpdateSettings(ctx, func(a *settings.AppSettings) {
		a.JournalPath = path
	})
	return err
}
