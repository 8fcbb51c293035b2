package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/doctor"
)

func addDoctor(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Find journal blocks that cannot be read and wrong day codes",
		Example: `
daybook doctor
daybook doctor --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			d := doctor.Doctor{Service: svc, JSON: output.JSON, Out: cmd.OutOrStdout()}
			return output.HandleError(d.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
