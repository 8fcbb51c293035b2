package options

import (
	"fmt"

	"github.com/spf13/cobra"
)

// FormatOptions
type FormatOptions struct {
	Output string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", "",
		"Output format. One of 'yaml' or 'json'. Defaults to a table.")
}

// Validate rejects unknown formats.
func (o *FormatOptions) Validate() error {
	switch o.Output {
	case "", "yaml", "json":
		return nil
	default:
		return fmt.Errorf("options: unknown output format %q", o.Output)
	}
}
