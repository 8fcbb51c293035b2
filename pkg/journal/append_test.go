package journal

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tableflip.dev/daybook/pkg/entry"
)

func day(y int, m time.Month, d int) entry.Date {
	return entry.Date{Year: y, Month: m, Day: d}
}

type memoryResource struct {
	text     string
	readErr  error
	writeErr error
	reads    int
	writes   int
}

func (m *memoryResource) ReadAll(_ context.Context) (string, error) {
	m.reads++
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.text, nil
}

func (m *memoryResource) WriteAll(_ context.Context, text string) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.text = text
	return nil
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		date entry.Date
		want string
	}{
		{day(2024, time.June, 2), "2024-06-02 x | "},
		{day(2024, time.June, 3), "2024-06-03 m | "},
		{day(2024, time.March, 5), "2024-03-05 t | "},
		{day(2024, time.March, 6), "2024-03-06 w | "},
		{day(2024, time.March, 7), "2024-03-07 h | "},
		{day(2024, time.March, 8), "2024-03-08 f | "},
		{day(2024, time.March, 9), "2024-03-09 s | "},
	}
	for _, tc := range tests {
		if got := Prefix(tc.date); got != tc.want {
			t.Fatalf("Prefix(%s) = %q, want %q", tc.date, got, tc.want)
		}
	}
}

func TestAppendToEmptyLog(t *testing.T) {
	for _, existing := range []string{"", "   ", "\n\n", " \n\t"} {
		out, err := Append(day(2024, time.June, 3), "  hello world \n", existing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Entry != "2024-06-03 m | hello world" {
			t.Fatalf("unexpected entry %q", out.Entry)
		}
		if out.Log != out.Entry {
			t.Fatalf("expected log to equal entry for %q, got %q", existing, out.Log)
		}
	}
}

func TestAppendToExistingLog(t *testing.T) {
	existing := "2024-06-02 x | yesterday\n"
	out, err := Append(day(2024, time.June, 3), "today", existing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := existing + "\n\n" + "2024-06-03 m | today"
	if out.Log != want {
		t.Fatalf("got %q, want %q", out.Log, want)
	}
	if !strings.HasPrefix(out.Entry, Prefix(day(2024, time.June, 3))) {
		t.Fatalf("entry does not start with the prefix: %q", out.Entry)
	}
}

func TestAppendKeepsMultilineContent(t *testing.T) {
	out, err := Append(day(2024, time.June, 3), "line one\nline two", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Entry != "2024-06-03 m | line one\nline two" {
		t.Fatalf("unexpected entry %q", out.Entry)
	}
}

func TestAppendCollapsesBlankLines(t *testing.T) {
	out, err := Append(day(2024, time.June, 3), "first paragraph\n\n\n2020-06-03 w | second", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Entry != "2024-06-03 m | first paragraph\n2020-06-03 w | second" {
		t.Fatalf("unexpected entry %q", out.Entry)
	}
	got := Parse(out.Log)
	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	if matches := OnThisDay(out.Log, day(2025, time.June, 3)); len(matches) != 1 {
		t.Fatalf("expected one match, got %d", len(matches))
	}
}

func TestContent(t *testing.T) {
	tests := map[string]string{
		"  plain  ":            "plain",
		"one\ntwo":             "one\ntwo",
		"one\n\ntwo":           "one\ntwo",
		"one\r\n\r\ntwo":       "one\ntwo",
		"one\n \t\n\n two":     "one\n two",
		"one\r\rtwo":           "one\ntwo",
		"\n\nlead and trail\n": "lead and trail",
	}
	for in, want := range tests {
		if got := Content(in); got != want {
			t.Fatalf("Content(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAppendRejectsEmptyContent(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t\n"} {
		_, err := Append(day(2024, time.June, 3), content, "x")
		if !errors.Is(err, ErrEmptyEntry) {
			t.Fatalf("expected ErrEmptyEntry for %q, got %v", content, err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "content" {
			t.Fatalf("expected a content ValidationError, got %#v", err)
		}
	}
}

func TestAppendRejectsInvalidDate(t *testing.T) {
	_, err := Append(day(2023, time.February, 29), "leap?", "")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "date" {
		t.Fatalf("expected a date ValidationError, got %v", err)
	}
}

func TestAppendToResource(t *testing.T) {
	ctx := context.Background()
	res := &memoryResource{}
	if _, err := AppendTo(ctx, res, day(2024, time.June, 2), "first"); err != nil {
		t.Fatalf("append: %v", err)
	}
	out, err := AppendTo(ctx, res, day(2024, time.June, 3), "second")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	want := "2024-06-02 x | first\n\n2024-06-03 m | second"
	if res.text != want || out.Log != want {
		t.Fatalf("got %q, want %q", res.text, want)
	}
	if res.writes != 2 {
		t.Fatalf("expected one write per append, got %d", res.writes)
	}
}

func TestAppendToRejectsBeforeReading(t *testing.T) {
	res := &memoryResource{text: "keep"}
	_, err := AppendTo(context.Background(), res, day(2024, time.June, 3), " ")
	if !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
	if res.reads != 0 || res.writes != 0 {
		t.Fatalf("expected no I/O, got %d reads and %d writes", res.reads, res.writes)
	}
}

func TestAppendToSurfacesResourceErrors(t *testing.T) {
	ctx := context.Background()
	readFail := &memoryResource{readErr: ErrResourceUnavailable}
	if _, err := AppendTo(ctx, readFail, day(2024, time.June, 3), "x"); !errors.Is(err, ErrResourceUnavailable) {
		t.Fatalf("expected read failure, got %v", err)
	}
	if readFail.writes != 0 {
		t.Fatalf("must not write after a failed read")
	}

	writeFail := &memoryResource{text: "old", writeErr: ErrResourceUnavailable}
	_, err := AppendTo(ctx, writeFail, day(2024, time.June, 3), "x")
	if !errors.Is(err, ErrResourceUnavailable) {
		t.Fatalf("expected write failure, got %v", err)
	}
	if errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("write failures must be distinguishable from validation")
	}
	if writeFail.text != "old" {
		t.Fatalf("failed write must leave the log alone")
	}
}
