// Package printers renders journal data for the command line.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/daybook/pkg/entry"
	"tableflip.dev/daybook/pkg/glyph"
)

type PrettyPrint struct {
	Out io.Writer
	// Width wraps entry content; zero leaves lines as written.
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries prints each entry as a dated heading followed by its content.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), "  none\n\n")
		return
	}
	entry.PrettyPrint(pp.out(), pp.Width, entries...)
}

// Days prints the day code legend.
func (pp *PrettyPrint) Days(days []glyph.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Code"), bold.Sprint("Day"), bold.Sprint("Also"))
	for _, g := range days {
		tbl.AddRow(g.String(), g.Meaning, strings.Join(g.Aliases, ", "))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Fields prints label/value pairs as an aligned table.
func (pp *PrettyPrint) Fields(rows [][2]string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range rows {
		tbl.AddRow(color.New(color.Bold).Sprint(r[0]), r[1])
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}
