package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change reminder and journal file settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSettingsShow(cmd)
	addSettingsSet(cmd)

	topLevel.AddCommand(cmd)
}

func addSettingsShow(parent *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Example: `
daybook settings show
daybook settings show -o yaml
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fo.Validate(); err != nil {
				return output.HandleError(err)
			}
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			format := fo.Output
			if format == "" && output.JSON {
				format = "json"
			}
			s := settings.Show{Service: svc, Output: format, Out: cmd.OutOrStdout()}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddFormatArgs(cmd, fo)

	parent.AddCommand(cmd)
}

func addSettingsSet(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "set (notifications on|off | time HH:MM | path FILE)",
		Short: "Change one setting",
		Example: `
daybook settings set notifications on
daybook settings set time 21:30
daybook settings set path ~/Documents/journal.md
`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"notifications", "time", "path"},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := service()
			if err != nil {
				return output.HandleError(err)
			}
			s := settings.Set{Service: svc, Field: args[0], Value: args[1], Out: cmd.OutOrStdout()}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	parent.AddCommand(cmd)
}
