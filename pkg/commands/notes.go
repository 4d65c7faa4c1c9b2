package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/runner/notes"
)

func addNotes(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	width := 0

	cmd := &cobra.Command{
		Use:   "notes",
		Short: base.Wrap80("List every entry with its mood, note and temperature."),
		Example: `
moodiary notes
moodiary notes --width=60
moodiary notes --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := setup(cmd.Context(), oo)
			if err != nil {
				return output.HandleError(err)
			}
			defer e.Close()

			n := notes.Notes{Service: e.svc, Output: output, Width: width}
			return output.HandleError(n.Do(cmd.Context()))
		},
	}

	options.AddOutputArg(cmd, output)
	cmd.Flags().IntVar(&width, "width", 0, "Wrap notes at this many columns.")

	topLevel.AddCommand(cmd)
}
