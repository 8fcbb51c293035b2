package add

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
)

// Add writes today's entry. When Text is empty or "-" the entry is read
// from In.
type Add struct {
	Service *app.Service
	Text    string
	In      io.Reader
	JSON    bool
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return fmt.Errorf("add: no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	content := n.Text
	if content == "" || content == "-" {
		if n.In == nil {
			return fmt.Errorf("add: no entry text given")
		}
		b, err := io.ReadAll(n.In)
		if err != nil {
			return fmt.Errorf("add: read entry: %w", err)
		}
		content = string(b)
	}

	appended, err := n.Service.Add(ctx, content)
	if err != nil {
		return err
	}

	if n.JSON {
		return json.NewEncoder(out).Encode(map[string]string{"entry": appended.Entry})
	}
	_, _ = color.New(color.FgGreen).Fprint(out, "Saved ")
	_, _ = fmt.Fprintln(out, appended.Entry)
	return nil
}
