package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Raw   bool
	Width int
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().BoolVar(&o.Raw, "raw", false,
		"Print the journal file as written instead of rendering it.")
	cmd.Flags().IntVarP(&o.Width, "width", "w", 0,
		"Wrap rendered output at this width. Defaults to the terminal width.")
}
