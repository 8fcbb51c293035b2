// Package doctor reports journal blocks that cannot be read back and entries
// whose day code does not match their date.
package doctor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/glyph"
)

const previewLen = 60

type Doctor struct {
	Service *app.Service
	JSON    bool
	Out     io.Writer
}

func (d *Doctor) Do(ctx context.Context) error {
	if d.Service == nil {
		return fmt.Errorf("doctor: no service")
	}
	out := d.Out
	if out == nil {
		out = color.Output
	}
	r, err := d.Service.Doctor(ctx)
	if err != nil {
		return err
	}
	if d.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	bold := color.New(color.Bold)
	warn := color.New(color.FgYellow)
	_, _ = bold.Fprintln(out, r.Path)
	_, _ = fmt.Fprintf(out, "%d entries read\n", r.Entries)

	if len(r.Malformed) > 0 {
		_, _ = fmt.Fprintln(out, "")
		_, _ = bold.Fprintf(out, "Skipped blocks (%d)\n", len(r.Malformed))
		for _, m := range r.Malformed {
			_, _ = warn.Fprintf(out, "  block %d: %s\n", m.Index+1, m.Reason)
			_, _ = fmt.Fprintf(out, "    %s\n", preview(m.Block))
		}
	}
	if len(r.Mismatched) > 0 {
		_, _ = fmt.Fprintln(out, "")
		_, _ = bold.Fprintf(out, "Day code mismatches (%d)\n", len(r.Mismatched))
		for _, e := range r.Mismatched {
			_, _ = warn.Fprintf(out, "  %s has %q, expected %q\n", e.Date, e.Day, glyph.ForWeekday(e.Date.Weekday()))
		}
	}
	if r.OK() {
		_, _ = color.New(color.FgGreen).Fprintln(out, "No problems found.")
	}
	return nil
}

func preview(block string) string {
	line := strings.TrimSpace(block)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i] + " ..."
	}
	if len(line) > previewLen {
		line = line[:previewLen] + "..."
	}
	return line
}
