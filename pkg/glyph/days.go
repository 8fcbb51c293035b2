// Package glyph defines the single character day codes written into journal
// headers.
package glyph

import "time"

// Day is the one letter weekday code that follows the date in a header.
type Day string

const (
	Monday    Day = "m"
	Tuesday   Day = "t"
	Wednesday Day = "w"
	Thursday  Day = "h"
	Friday    Day = "f"
	Saturday  Day = "s"
	Sunday    Day = "x"
)

// Glyph describes a day code for legends and help output.
type Glyph struct {
	Key     Day
	Weekday time.Weekday
	Meaning string
	Aliases []string
}

func (g Glyph) String() string {
	return string(g.Key)
}

// DefaultDays returns the day codes in Monday-first order.
func DefaultDays() []Glyph {
	return []Glyph{
		{Key: Monday, Weekday: time.Monday, Meaning: "Monday", Aliases: []string{"mon"}},
		{Key: Tuesday, Weekday: time.Tuesday, Meaning: "Tuesday", Aliases: []string{"tue", "tues"}},
		{Key: Wednesday, Weekday: time.Wednesday, Meaning: "Wednesday", Aliases: []string{"wed"}},
		// t is taken by Tuesday.
		{Key: Thursday, Weekday: time.Thursday, Meaning: "Thursday", Aliases: []string{"thu", "thurs"}},
		{Key: Friday, Weekday: time.Friday, Meaning: "Friday", Aliases: []string{"fri"}},
		{Key: Saturday, Weekday: time.Saturday, Meaning: "Saturday", Aliases: []string{"sat"}},
		// s is taken by Saturday.
		{Key: Sunday, Weekday: time.Sunday, Meaning: "Sunday", Aliases: []string{"sun"}},
	}
}

// ForWeekday maps a weekday to its code. Anything outside the table falls
// back to Sunday.
func ForWeekday(w time.Weekday) Day {
	for _, g := range DefaultDays() {
		if g.Weekday == w {
			return g.Key
		}
	}
	return Sunday
}

// Weekday reports the weekday for the code, if it is one of the known codes.
func (d Day) Weekday() (time.Weekday, bool) {
	for _, g := range DefaultDays() {
		if g.Key == d {
			return g.Weekday, true
		}
	}
	return time.Sunday, false
}

// Valid reports whether d is one of the seven known codes.
func (d Day) Valid() bool {
	_, ok := d.Weekday()
	return ok
}

func (d Day) String() string {
	return string(d)
}
