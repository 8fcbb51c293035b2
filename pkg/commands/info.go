package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where the config and journal are stored.",
		Example: `
daybook info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, svc, err := load()
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:  cfg,
				Service: svc,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
