package home

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app/apptest"
	"tableflip.dev/daybook/pkg/entry"
)

func init() {
	color.NoColor = true
}

const log = "2022-06-15 w | two years back\n\n2023-06-15 h | one year back\n\n2024-06-02 x | earlier this month"

var now = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.Local)

func TestHomePrintsHistoryNewestFirst(t *testing.T) {
	svc, _, _ := apptest.New(t, log, now)
	var buf bytes.Buffer
	h := &Home{Service: svc, Out: &buf}
	if err := h.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Saturday, June 15, 2024") {
		t.Fatalf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "On this day - 2 entries") {
		t.Fatalf("missing count:\n%s", out)
	}
	if !strings.Contains(out, "No entry yet today") {
		t.Fatalf("missing prompt:\n%s", out)
	}
	one := strings.Index(out, "one year back")
	two := strings.Index(out, "two years back")
	if one < 0 || two < 0 || one > two {
		t.Fatalf("expected newest first:\n%s", out)
	}
}

func TestHomeJSON(t *testing.T) {
	svc, _, _ := apptest.New(t, log, now)
	var buf bytes.Buffer
	h := &Home{Service: svc, Out: &buf, JSON: true, On: entry.Date{Year: 2025, Month: time.June, Day: 2}}
	if err := h.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got struct {
		Date      string `json:"date"`
		OnThisDay []struct {
			Content string `json:"content"`
		} `json:"onThisDay"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, buf.String())
	}
	if got.Date != "2025-06-02" || len(got.OnThisDay) != 1 || got.OnThisDay[0].Content != "earlier this month" {
		t.Fatalf("unexpected output: %+v", got)
	}
}
