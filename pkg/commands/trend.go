package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/runner/trend"
)

func addTrend(topLevel *cobra.Command) {
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "trend",
		Short: base.Wrap80("Chart the mood of every entry, in the order the entries were first written."),
		Example: `
moodiary trend
moodiary trend --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := setup(cmd.Context(), oo)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			t := trend.Trend{Service: e.svc, Output: output}
			return output.HandleError(t.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
