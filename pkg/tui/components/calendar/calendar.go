// Package calendar renders a month grid for the home screen.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/daybook/pkg/entry"
)

// Options controls calendar styling.
type Options struct {
	TitleStyle    lipgloss.Style
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// Month describes what to draw: the month containing Selected, the days
// that have entries, and today.
type Month struct {
	Selected  entry.Date
	Today     entry.Date
	EntryDays map[int]bool
}

// Render produces a multi-line, Sunday-first calendar string.
func Render(m Month, opts Options) string {
	if m.Selected.IsZero() {
		return ""
	}
	first := time.Date(m.Selected.Year, m.Selected.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := DaysIn(m.Selected)

	todayDay := 0
	if m.Today.Year == m.Selected.Year && m.Today.Month == m.Selected.Month {
		todayDay = m.Today.Day
	}

	lines := []string{opts.TitleStyle.Render(first.Format("January 2006"))}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	startOffset := int(first.Weekday())
	rows := (startOffset + daysInMonth + 6) / 7

	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(day, m.EntryDays[day], day == todayDay, day == m.Selected.Day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(day int, hasEntry, isToday, isSelected bool, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.EmptyStyle
	if hasEntry {
		style = opts.EntryStyle
	}
	if isToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if isSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}

// DaysIn returns the number of days in d's month.
func DaysIn(d entry.Date) int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Shift moves d by days, staying on the Gregorian calendar.
func Shift(d entry.Date, days int) entry.Date {
	return entry.DateOf(d.Time(time.UTC).AddDate(0, 0, days))
}

// DefaultOptions returns the styling used for calendar rendering.
func DefaultOptions() Options {
	title := lipgloss.NewStyle().Bold(true)
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true)
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	entry := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	today := lipgloss.NewStyle().Underline(true)
	selected := lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0"))
	return Options{
		TitleStyle:    title,
		HeaderStyle:   header,
		EmptyStyle:    empty,
		EntryStyle:    entry,
		TodayStyle:    today,
		SelectedStyle: selected,
		ShowHeader:    true,
	}
}
