package commands

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"
)

func addUpgrade(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade daybook cli.",
		Example: `
daybook upgrade
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ex := exec.CommandContext(cmd.Context(), "go", "install", "tableflip.dev/daybook/cmd/daybook@latest")
			var out bytes.Buffer
			ex.Stdout = &out
			ex.Stderr = &out
			if err := ex.Run(); err != nil {
				return output.HandleError(fmt.Errorf("upgrade: %w: %s", err, out.String()))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ex.String())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
