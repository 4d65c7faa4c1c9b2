package commands

import (
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: base.Wrap80("Show the entry for today, or for the day given with --on."),
		Example: `
moodiary show
moodiary show --on=10/1
moodiary show --on=2026-10-01 --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := setup(cmd.Context(), oo)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			date, err := on.GetOn(time.Now())
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{Service: e.svc, On: date, Output: output}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
