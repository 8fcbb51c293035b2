// Package home prints the calendar and the entries written on this day in
// earlier years.
package home

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/printers"
)

type Home struct {
	Service *app.Service
	On      entry.Date
	JSON    bool
	Width   int
	Out     io.Writer
}

func (n *Home) Do(ctx context.Context) error {
	if n.Service == nil {
		return fmt.Errorf("home: no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	today := n.Service.Today()
	on := n.On
	if on.IsZero() {
		on = today
	}

	h, err := n.Service.Home(ctx, on)
	if err != nil {
		return err
	}

	if n.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(h)
	}

	pp := &printers.PrettyPrint{Out: out, Width: n.Width}
	pp.Title(on.Time(nil).Format("Monday, January 2, 2006"))
	pp.NewLine()
	pp.Month(on, today, h.EntryDays)
	if on == today && !h.WrittenToday {
		_, _ = color.New(color.Faint).Fprintln(out, `No entry yet today. Write one with "daybook add".`)
		pp.NewLine()
	}
	pp.TitleWithCount("On this day", len(h.History))
	pp.Entries(h.History...)
	return nil
}
