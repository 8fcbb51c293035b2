// Package key provides CLI helpers to display the day code legend.
package key

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/glyph"
	"tableflip.dev/daybook/pkg/printers"
)

// Key prints the one letter codes written after each entry's date.
type Key struct {
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	pp := &printers.PrettyPrint{Out: out}
	pp.Days(glyph.DefaultDays())
	_, _ = fmt.Fprintln(out, "Entries are written as: YYYY-MM-DD <code> | text")
	return nil
}
