package settings

import (
	"context"
	"fmt"

	"tableflip.dev/daybook/pkg/timeutil"
)

// ReminderAction is what a settings change requires of the reminder
// scheduler.
type ReminderAction int

const (
	ReminderNone ReminderAction = iota
	ReminderSchedule
	ReminderCancel
	ReminderReschedule
)

func (a ReminderAction) String() string {
	switch a {
	case ReminderSchedule:
		return "schedule"
	case ReminderCancel:
		return "cancel"
	case ReminderReschedule:
		return "reschedule"
	default:
		return "none"
	}
}

// Plan compares the saved settings with the new ones.
func Plan(old, next AppSettings) ReminderAction {
	switch {
	case next.NotificationsEnabled && !old.NotificationsEnabled:
		return ReminderSchedule
	case !next.NotificationsEnabled && old.NotificationsEnabled:
		return ReminderCancel
	case next.NotificationsEnabled && next.NotificationTime != old.NotificationTime:
		return ReminderReschedule
	default:
		return ReminderNone
	}
}

// Scheduler delivers the daily reminder.
type Scheduler interface {
	Schedule(ctx context.Context, at timeutil.Clock) error
	Cancel(ctx context.Context) error
}

// Apply carries out action against sched using the time in next. Schedule
// and Reschedule both cancel whatever was scheduled before.
func Apply(ctx context.Context, sched Scheduler, action ReminderAction, next AppSettings) error {
	switch action {
	case ReminderNone:
		return nil
	case ReminderCancel:
		return sched.Cancel(ctx)
	case ReminderSchedule, ReminderReschedule:
		at, err := next.Clock()
		if err != nil {
			return err
		}
		if err := sched.Cancel(ctx); err != nil {
			return fmt.Errorf("settings: cancel previous reminder: %w", err)
		}
		return sched.Schedule(ctx, at)
	default:
		return fmt.Errorf("settings: unknown reminder action %d", action)
	}
}
