package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: base.Wrap80("Show the calendar with the mood of each day. Moving the month is remembered for the next run."),
		Example: `
moodiary month
moodiary month --next
moodiary month --shift=-3
moodiary month --year=2026 --month=1
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := setup(cmd.Context(), oo)
			if err != nil {
				return err
			}
			defer e.Close()

			jump, ok, err := mo.Jump(e.svc.View())
			if err != nil {
				return err
			}
			m := month.Month{
				Service: e.svc,
				Delta:   mo.Delta(),
			}
			if ok {
				m.Jump = &jump
			}
			return m.Do(cmd.Context())
		},
	}

	options.AddMonthArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
