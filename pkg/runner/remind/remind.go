// Package remind runs the daily reminder in the foreground.
package remind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/reminder"
	"tableflip.dev/daybook/pkg/settings"
)

// Remind schedules the reminder from settings and blocks until ctx is done.
type Remind struct {
	Service   *app.Service
	Scheduler *reminder.Local
	Out       io.Writer
}

func (r *Remind) Do(ctx context.Context) error {
	if r.Service == nil {
		return fmt.Errorf("remind: no service")
	}
	out := r.Out
	if out == nil {
		out = color.Output
	}
	cfg, err := r.Service.LoadSettings()
	if err != nil {
		return err
	}
	if !cfg.NotificationsEnabled {
		return errors.New(`remind: daily reminder is off, turn it on with "daybook settings set notifications on"`)
	}

	sched := r.Scheduler
	if sched == nil {
		sched = &reminder.Local{}
	}
	if sched.Notify == nil {
		sched.Notify = func(at time.Time) { reminder.Print(out, at) }
	}
	r.Service.Scheduler = sched
	if err := settings.Apply(ctx, sched, settings.ReminderSchedule, cfg); err != nil {
		return err
	}
	defer func() { _ = sched.Cancel(context.Background()) }()

	if next, ok := sched.Next(); ok {
		_, _ = fmt.Fprintf(out, "Next reminder %s. Press ctrl+c to stop.\n", next.Format("Mon Jan 2 15:04"))
	}
	if err := sched.Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
