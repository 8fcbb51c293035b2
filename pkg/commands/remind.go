package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Stay in the foreground and ring at the daily reminder time",
		Example: `
daybook settings set notifications on
daybook remind
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			r := remind.Remind{Service: svc, Out: cmd.OutOrStdout()}
			return output.HandleError(r.Do(ctx))
		},
	}

	topLevel.AddCommand(cmd)
}
