package logview

import (
	"regexp"
	"strings"
	"testing"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z~]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderKeepsEntries(t *testing.T) {
	text := "2024-06-15 s | walked the dog\n\n2024-06-16 x | rain all day"
	out, err := Render(text, 60)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	plain := stripANSI(out)
	for _, want := range []string{"walked the dog", "rain all day", "2024-06-16"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("rendered log missing %q:\n%s", want, plain)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	out, err := Render("  \n", 40)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(stripANSI(out), "Nothing written yet.") {
		t.Fatalf("expected empty placeholder, got %q", out)
	}
}

func TestViewShowsText(t *testing.T) {
	m := New(50, 12)
	m.SetText("2024-06-15 s | hello")
	if m.Err() != nil {
		t.Fatalf("render error: %v", m.Err())
	}
	if !strings.Contains(stripANSI(m.View()), "hello") {
		t.Fatalf("expected entry in view")
	}
}
