package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/app"
	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/store"
)

var (
	output  = &options.OutputOptions{}
	file    = &options.FileOptions{}
	verbose = &options.VerboseOptions{}
)

func New() *cobra.Command {
	ho := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: base.Wrap80("A daily journal with a look back at this day in earlier years."),
		Long: base.Wrap80("daybook keeps one entry per day in a single plain text file. " +
			"Run without a command to see this month and what you wrote on this day in earlier years."),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.Out = cmd.OutOrStdout()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return output.HandleError(runHome(cmd, ho))
		},
	}

	options.AddOutputArg(cmd, output)
	options.AddFileArgs(cmd, file)
	options.AddVerboseArgs(cmd, verbose)
	options.AddOnArgs(cmd, ho)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addHome(topLevel)
	addAdd(topLevel)
	addLog(topLevel)
	addKey(topLevel)
	addSettings(topLevel)
	addRemind(topLevel)
	addDoctor(topLevel)
	addInfo(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}

// service builds the journal service from config, --file and --verbose.
func service() (*app.Service, error) {
	_, svc, err := load()
	return svc, err
}

func load() (store.Config, *app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.New(cfg, file.File, verbose.Logger())
	if err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// markdownStyle picks the glamour style matching the terminal background.
func markdownStyle() string {
	if !stdoutIsTerminal() || termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
