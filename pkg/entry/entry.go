package entry

import (
	"fmt"

	"tableflip.dev/daybook/pkg/glyph"
)

// New builds an entry for the given date. The day code is derived from the
// date and the placeholder timestamps are set to local midnight.
func New(date Date, content string) *Entry {
	return FromLog(date, glyph.ForWeekday(date.Weekday()), content)
}

// FromLog builds an entry exactly as it was read from a log block, keeping the
// day code that was written in the header.
func FromLog(date Date, day glyph.Day, content string) *Entry {
	created := Timestamp{Time: date.Time(nil)}
	return &Entry{
		ID:      date.String(),
		Date:    date,
		Day:     day,
		Content: content,
		Created: created,
		Updated: created,
	}
}

type Entry struct {
	ID      string    `json:"id"`
	Date    Date      `json:"date"`
	Day     glyph.Day `json:"dayAbbrev"`
	Content string    `json:"content"`
	Created Timestamp `json:"createdAt"`
	Updated Timestamp `json:"updatedAt"`
}

// Title is the "date (code)" label shown above an entry.
func (e *Entry) Title() string {
	return fmt.Sprintf("%s (%s)", e.Date, e.Day)
}

// DayMismatch reports whether the stored day code disagrees with the
// weekday of the stored date. Hand edited logs can drift.
func (e *Entry) DayMismatch() bool {
	return glyph.ForWeekday(e.Date.Weekday()) != e.Day
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s %s | %s", e.Date, e.Day, e.Content)
}
