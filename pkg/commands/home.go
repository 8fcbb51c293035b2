package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/home"
)

func addHome(topLevel *cobra.Command) {
	ho := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "home",
		Short: "Show this month and entries from this day in earlier years",
		Example: `
daybook home
daybook home --on=2024-2-29
daybook home --on=12/25
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.HandleError(runHome(cmd, ho))
		},
	}

	options.AddOnArgs(cmd, ho)

	topLevel.AddCommand(cmd)
}

func runHome(cmd *cobra.Command, ho *options.OnOptions) error {
	svc, err := service()
	if err != nil {
		return err
	}
	on, err := ho.GetOn(time.Now())
	if err != nil {
		return err
	}
	h := home.Home{
		Service: svc,
		On:      on,
		JSON:    output.JSON,
		Out:     cmd.OutOrStdout(),
	}
	return h.Do(cmd.Context())
}
