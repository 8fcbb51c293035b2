package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/entry"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions picks the reference date for views that look back in time.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`View a different day, example: --on="2020-2-28" or --on="2/28".`)
}

// GetOn returns the requested date, or the day of now when --on is unset.
// The short form keeps now's year.
func (o *OnOptions) GetOn(now time.Time) (entry.Date, error) {
	if o.OnString == "" {
		return entry.DateOf(now), nil
	}
	if t, err := time.Parse(layoutISO, o.OnString); err == nil {
		d := entry.DateOf(t)
		if !d.Valid() {
			return entry.Date{}, fmt.Errorf("options: --on %q: year out of range", o.OnString)
		}
		return d, nil
	}
	t, err := time.Parse(layoutISOShort, o.OnString)
	if err != nil {
		return entry.Date{}, fmt.Errorf("options: --on %q: expected YYYY-M-D or M/D", o.OnString)
	}
	// The parsed year is 0, a leap year, so 2/29 parses for any year.
	d := entry.Date{Year: now.Year(), Month: t.Month(), Day: t.Day()}
	if !d.Valid() {
		return entry.Date{}, fmt.Errorf("options: --on %q: not a day in %d", o.OnString, now.Year())
	}
	return d, nil
}
