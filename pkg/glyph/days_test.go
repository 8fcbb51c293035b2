package glyph

import (
	"testing"
	"time"
)

func TestForWeekday(t *testing.T) {
	tests := map[time.Weekday]Day{
		time.Sunday:    "x",
		time.Monday:    "m",
		time.Tuesday:   "t",
		time.Wednesday: "w",
		time.Thursday:  "h",
		time.Friday:    "f",
		time.Saturday:  "s",
	}
	for wd, want := range tests {
		if got := ForWeekday(wd); got != want {
			t.Fatalf("ForWeekday(%s) = %q, want %q", wd, got, want)
		}
	}
}

func TestForWeekdayOutOfRange(t *testing.T) {
	if got := ForWeekday(time.Weekday(9)); got != Sunday {
		t.Fatalf("expected fallback to Sunday, got %q", got)
	}
}

func TestDayWeekdayRoundTrip(t *testing.T) {
	for _, g := range DefaultDays() {
		wd, ok := g.Key.Weekday()
		if !ok {
			t.Fatalf("%q not recognised", g.Key)
		}
		if ForWeekday(wd) != g.Key {
			t.Fatalf("round trip mismatch for %q", g.Key)
		}
	}
	if Day("q").Valid() {
		t.Fatalf("expected q to be invalid")
	}
}
