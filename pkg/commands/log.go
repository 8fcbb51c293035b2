package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	lo := &options.LogOptions{}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the whole journal",
		Example: `
daybook log
daybook log --width 60
daybook log --raw | grep river
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			l := log.Log{
				Service:  svc,
				Raw:      lo.Raw,
				Terminal: stdoutIsTerminal(),
				Width:    lo.Width,
				Style:    markdownStyle(),
				Out:      cmd.OutOrStdout(),
			}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}

	options.AddLogArgs(cmd, lo)

	topLevel.AddCommand(cmd)
}
