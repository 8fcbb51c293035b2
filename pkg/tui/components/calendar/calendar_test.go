package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/daybook/pkg/entry"
)

func plainOptions() Options {
	s := lipgloss.NewStyle()
	return Options{
		TitleStyle:    s,
		HeaderStyle:   s,
		EmptyStyle:    s,
		EntryStyle:    s,
		TodayStyle:    s,
		SelectedStyle: s,
		ShowHeader:    true,
	}
}

func TestRenderFebruaryLeapYear(t *testing.T) {
	// February 2024 starts on a Thursday and has 29 days.
	out := Render(Month{Selected: entry.Date{Year: 2024, Month: time.February, Day: 10}}, plainOptions())
	lines := strings.Split(out, "\n")
	if lines[0] != "February 2024" {
		t.Fatalf("title = %q", lines[0])
	}
	if lines[1] != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("header = %q", lines[1])
	}
	if lines[2] != "             1  2  3" {
		t.Fatalf("first week = %q", lines[2])
	}
	if !strings.HasPrefix(lines[len(lines)-1], "25 26 27 28 29") {
		t.Fatalf("last week = %q", lines[len(lines)-1])
	}
}

func TestRenderZero(t *testing.T) {
	if got := Render(Month{}, plainOptions()); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestShiftAcrossMonths(t *testing.T) {
	d := entry.Date{Year: 2024, Month: time.March, Day: 1}
	if got := Shift(d, -1); got != (entry.Date{Year: 2024, Month: time.February, Day: 29}) {
		t.Fatalf("Shift back = %s", got)
	}
	if got := Shift(d, 31); got != (entry.Date{Year: 2024, Month: time.April, Day: 1}) {
		t.Fatalf("Shift forward = %s", got)
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(entry.Date{Year: 2023, Month: time.February, Day: 1}); got != 28 {
		t.Fatalf("DaysIn = %d", got)
	}
}

func TestStyledRowsKeepWidth(t *testing.T) {
	m := Month{
		Selected:  entry.Date{Year: 2024, Month: time.June, Day: 15},
		Today:     entry.Date{Year: 2024, Month: time.June, Day: 15},
		EntryDays: map[int]bool{3: true, 15: true},
	}
	lines := strings.Split(Render(m, DefaultOptions()), "\n")
	// Title and weekday header come first.
	for i, line := range lines[2:] {
		if w := ansi.PrintableRuneWidth(line); w != 20 {
			t.Fatalf("week %d is %d cells wide: %q", i+1, w, line)
		}
	}
}
