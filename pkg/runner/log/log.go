package log

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/tui/components/logview"
)

const defaultWidth = 80

// Log prints the whole journal. It is rendered as markdown unless Raw is set
// or the output is not a terminal.
type Log struct {
	Service  *app.Service
	Raw      bool
	Terminal bool
	Width    int
	// Style is the glamour style, "dark" or "light". Defaults to dark.
	Style string
	Out   io.Writer
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return fmt.Errorf("log: no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	text, err := n.Service.Log(ctx)
	if err != nil {
		return err
	}

	if n.Raw || !n.Terminal {
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintln(out, strings.TrimRight(text, "\n"))
		return err
	}

	width := n.Width
	if width <= 0 {
		width = defaultWidth
	}
	style := n.Style
	if style == "" {
		style = "dark"
	}
	rendered, err := logview.RenderStyle(text, width, style)
	if err != nil {
		return fmt.Errorf("log: render: %w", err)
	}
	_, err = fmt.Fprint(out, rendered)
	return err
}
