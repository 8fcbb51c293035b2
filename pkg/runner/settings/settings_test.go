package settings

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"tableflip.dev/daybook/pkg/app/apptest"
	appsettings "tableflip.dev/daybook/pkg/settings"
)

func init() {
	color.NoColor = true
}

func TestSetNotificationsAndTime(t *testing.T) {
	svc, _, st := apptest.New(t, "", time.Now())
	ctx := context.Background()

	var buf bytes.Buffer
	if err := (&Set{Service: svc, Field: "notifications", Value: "on", Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if !strings.Contains(buf.String(), "daybook remind") {
		t.Fatalf("expected remind hint:\n%s", buf.String())
	}
	if err := (&Set{Service: svc, Field: "time", Value: "21:15", Out: &buf}).Do(ctx); err != nil {
		t.Fatalf("time: %v", err)
	}
	got, _ := st.Load()
	if !got.NotificationsEnabled || got.NotificationTime != "21:15" {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestSetRejectsBadInput(t *testing.T) {
	svc, _, _ := apptest.New(t, "", time.Now())
	ctx := context.Background()
	cases := []*Set{
		{Service: svc, Field: "notifications", Value: "maybe"},
		{Service: svc, Field: "time", Value: "9am"},
		{Service: svc, Field: "path", Value: t.TempDir()},
		{Service: svc, Field: "colour", Value: "blue"},
	}
	for _, c := range cases {
		c.Out = &bytes.Buffer{}
		if err := c.Do(ctx); err == nil {
			t.Fatalf("expected %s=%s to fail", c.Field, c.Value)
		}
	}
}

func TestShowYAML(t *testing.T) {
	svc, _, _ := apptest.New(t, "", time.Now())
	var buf bytes.Buffer
	if err := (&Show{Service: svc, Output: "yaml", Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	var got appsettings.AppSettings
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.NotificationTime != "09:00" || got.NotificationsEnabled {
		t.Fatalf("unexpected settings: %+v", got)
	}
}

func TestShowTable(t *testing.T) {
	svc, _, _ := apptest.New(t, "", time.Now())
	var buf bytes.Buffer
	if err := (&Show{Service: svc, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{"Daily reminder", "off", "09:00", "journal.md"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("table missing %q:\n%s", want, buf.String())
		}
	}
}
