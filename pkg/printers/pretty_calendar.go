package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a Sunday-first month grid for on. Days present in written are
// bold, today is underlined.
func (pp *PrettyPrint) Month(on entry.Date, today entry.Date, written map[int]bool) {
	w := pp.out()
	then := time.Date(on.Year, on.Month, 1, 0, 0, 0, 0, time.UTC)
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", on.Month, on.Year)
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(w, "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = fmt.Fprintln(w, "Su Mo Tu We Th Fr Sa")

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(w, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	days := DaysIn(then)
	for i := 1; i <= days; i++ {
		printer := l1
		if written[i] {
			printer = l2
		}
		if today.Year == on.Year && today.Month == on.Month && today.Day == i {
			printer = color.New(color.Bold, color.Underline)
		}
		_, _ = printer.Fprintf(w, "%2d", i)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		} else if i < days {
			_, _ = fmt.Fprint(w, " ")
		}
	}
	if d != time.Sunday {
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = fmt.Fprint(w, "\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
