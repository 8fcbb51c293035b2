// Package settings shows and changes the stored daybook settings.
package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
	appsettings "tableflip.dev/daybook/pkg/settings"
)

// Show prints the settings as a table, yaml or json.
type Show struct {
	Service *app.Service
	Output  string
	Out     io.Writer
}

func (s *Show) Do(_ context.Context) error {
	if s.Service == nil {
		return fmt.Errorf("settings: no service")
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}
	cfg, err := s.Service.LoadSettings()
	if err != nil {
		return err
	}

	switch s.Output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case "yaml":
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = out.Write(b)
		return err
	}

	rows := [][2]string{
		{"Daily reminder", onOff(cfg.NotificationsEnabled)},
		{"Reminder time", cfg.NotificationTime},
		{"Journal file", cfg.JournalPath},
	}
	if path, err := s.Service.JournalPath(); err == nil && path != cfg.JournalPath {
		rows = append(rows, [2]string{"In use", path + " (override)"})
	}
	pp := &printers.PrettyPrint{Out: out}
	pp.Fields(rows)
	return nil
}

// Set changes one setting: notifications, time or path.
type Set struct {
	Service *app.Service
	Field   string
	Value   string
	Out     io.Writer
}

func (s *Set) Do(ctx context.Context) error {
	if s.Service == nil {
		return fmt.Errorf("settings: no service")
	}
	out := s.Out
	if out == nil {
		out = color.Output
	}

	var (
		action appsettings.ReminderAction
		err    error
	)
	switch strings.ToLower(s.Field) {
	case "notifications", "reminder":
		enabled, perr := parseOnOff(s.Value)
		if perr != nil {
			return perr
		}
		action, err = s.Service.SetNotifications(ctx, enabled)
	case "time":
		action, err = s.Service.SetNotificationTime(ctx, strings.TrimSpace(s.Value))
	case "path", "file":
		err = s.Service.SetJournalPath(ctx, strings.TrimSpace(s.Value))
	default:
		return fmt.Errorf("settings: unknown setting %q, expected notifications, time or path", s.Field)
	}
	if err != nil {
		return err
	}

	_, _ = color.New(color.FgGreen).Fprint(out, "Updated ")
	_, _ = fmt.Fprintf(out, "%s = %s\n", s.Field, s.Value)
	switch action {
	case appsettings.ReminderSchedule, appsettings.ReminderReschedule:
		_, _ = fmt.Fprintln(out, `Reminders are delivered while "daybook remind" is running.`)
	case appsettings.ReminderCancel:
		_, _ = fmt.Fprintln(out, "Daily reminder turned off.")
	}
	return nil
}

func parseOnOff(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "yes", "enabled":
		return true, nil
	case "off", "false", "no", "disabled":
		return false, nil
	default:
		return false, fmt.Errorf("settings: expected on or off, got %q", v)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
