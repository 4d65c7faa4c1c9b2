package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &globalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "moodiary",
		Short: base.Wrap80("Keep a daily mood journal on the command line: one mood and a note per day, with the weather when it was written."),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return cmd.Help()
			}
			return runUI(cmd, false)
		},
	}

	addGlobalArgs(cmd, oo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLog(topLevel)
	addMonth(topLevel)
	addTrend(topLevel)
	addNotes(topLevel)
	addShow(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
