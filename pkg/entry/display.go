package entry

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// PrettyPrint writes each entry as a bold "date (code)" title followed by its
// content, wrapped to width and indented under the title.
func PrettyPrint(w io.Writer, width int, entries ...*Entry) {
	if w == nil {
		w = color.Output
	}
	title := color.New(color.Bold)
	for _, e := range entries {
		_, _ = title.Fprintln(w, e.Title())
		body := e.Content
		if width > 12 {
			body = wordwrap.String(body, width-2)
		}
		_, _ = fmt.Fprintln(w, indent.String(body, 2))
		_, _ = fmt.Fprintln(w)
	}
}
