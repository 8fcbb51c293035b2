package add

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app/apptest"
	"tableflip.dev/daybook/pkg/journal"
)

func init() {
	color.NoColor = true
}

var now = time.Date(2024, time.June, 17, 21, 0, 0, 0, time.Local)

func TestAddFromArgs(t *testing.T) {
	svc, j, _ := apptest.New(t, "2024-06-16 x | yesterday\n", now)
	var buf bytes.Buffer
	a := &Add{Service: svc, Text: "long run in the park", Out: &buf}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	want := "2024-06-16 x | yesterday\n\n\n2024-06-17 m | long run in the park"
	if j.Text() != want {
		t.Fatalf("journal = %q, want %q", j.Text(), want)
	}
	if buf.String() != "Saved 2024-06-17 m | long run in the park\n" {
		t.Fatalf("output = %q", buf.String())
	}
}

func TestAddFromStdin(t *testing.T) {
	svc, j, _ := apptest.New(t, "", now)
	a := &Add{Service: svc, Text: "-", In: strings.NewReader("line one\nline two\n"), Out: &bytes.Buffer{}}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if j.Text() != "2024-06-17 m | line one\nline two" {
		t.Fatalf("journal = %q", j.Text())
	}
}

func TestAddEmpty(t *testing.T) {
	svc, j, _ := apptest.New(t, "", now)
	a := &Add{Service: svc, In: strings.NewReader("  \n"), Out: &bytes.Buffer{}}
	err := a.Do(context.Background())
	if !errors.Is(err, journal.ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
	if j.Writes != 0 {
		t.Fatalf("nothing should be written")
	}
}
