package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// Clock is a wall clock time of day.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "H:MM" or "HH:MM" in 24 hour form.
func ParseClock(input string) (Clock, error) {
	m := clockPattern.FindStringSubmatch(input)
	if m == nil {
		return Clock{}, fmt.Errorf("invalid time %q, want HH:MM", input)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return Clock{Hour: hour, Minute: minute}, nil
}

// String renders the zero padded HH:MM form.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// On returns the clock time on the day of t, in t's location.
func (c Clock) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

// NextFire returns the next moment strictly after now at which c occurs:
// later today when that is still ahead, otherwise tomorrow.
func (c Clock) NextFire(now time.Time) time.Time {
	at := c.On(now)
	if !at.After(now) {
		at = c.On(now.AddDate(0, 0, 1))
	}
	return at
}
