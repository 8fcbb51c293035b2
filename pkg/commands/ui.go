package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/ui"
	"tableflip.dev/daybook/pkg/tui/components/logview"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
daybook ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return err
			}
			logview.Style = markdownStyle()
			i := ui.UI{Service: svc}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
