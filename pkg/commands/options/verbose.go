package options

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// VerboseOptions
type VerboseOptions struct {
	Verbose bool
}

func AddVerboseArgs(cmd *cobra.Command, o *VerboseOptions) {
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug detail to stderr.")
}

// Logger writes text logs to stderr, at debug level under --verbose.
func (o *VerboseOptions) Logger() *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
