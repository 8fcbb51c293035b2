package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/printers"
	"tableflip.dev/daybook/pkg/store"
)

// Info prints where daybook reads its configuration and journal from.
type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}
	if n.Config == nil {
		var err error
		if n.Config, err = store.LoadConfig(); err != nil {
			return err
		}
	}
	if n.Service == nil {
		return fmt.Errorf("info: no service")
	}

	rows := [][2]string{}
	if override := os.Getenv("DAYBOOK_CONFIG_PATH"); override != "" {
		rows = append(rows, [2]string{"DAYBOOK_CONFIG_PATH", override})
	}
	file := store.ConfigFile(n.Config)
	if file == "" {
		file = "(none)"
	}
	rows = append(rows,
		[2]string{"Config file", file},
		[2]string{"Data directory", n.Config.DataDir()},
	)

	path, err := n.Service.JournalPath()
	if err != nil {
		return err
	}
	rows = append(rows, [2]string{"Journal file", path})

	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	rows = append(rows, [2]string{"Entries", fmt.Sprint(len(entries))})
	if len(entries) > 0 {
		rows = append(rows, [2]string{"Last entry", entries[len(entries)-1].Date.String()})
	}

	pp := &printers.PrettyPrint{Out: out}
	pp.Fields(rows)
	return nil
}
