package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Write today's entry",
		Long: `Appends an entry dated today to the journal. With no arguments, or with
"-", the entry is read from stdin.`,
		Example: `
daybook add walked along the river after work
echo "rainy day, stayed in" | daybook add
daybook add - < notes.txt
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			a := add.Add{
				Service: svc,
				Text:    strings.Join(args, " "),
				In:      cmd.InOrStdin(),
				JSON:    output.JSON,
				Out:     cmd.OutOrStdout(),
			}
			return output.HandleError(a.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
