package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	wo := &options.WeatherOptions{}

	cmd := &cobra.Command{
		Use:   "log <mood> <note...>",
		Short: base.Wrap80("Record how you feel today, or on a later day with --on. The mood is a symbol, a name like happy, or a rank from 1 to 5."),
		Example: `
moodiary log happy long walk by the river
moodiary log 😞 missed the bus
moodiary log 3 --on=tomorrow planning the week
moodiary log great friends over --weather-wait=2s
`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: mood.Nouns(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			m, err := mood.ForAlias(args[0])
			if err != nil {
				return err
			}

			e, err := setup(cmd.Context(), oo)
			if err != nil {
				return err
			}
			defer e.Close()

			date, err := on.GetOn(time.Now())
			if err != nil {
				return err
			}

			l := log.Log{
				Service:     e.svc,
				Mood:        m,
				Note:        strings.Join(args[1:], " "),
				On:          date,
				Weather:     e.waiter(),
				WeatherWait: wo.Wait,
				Log:         e.log,
			}
			return l.Do(cmd.Context())
		},
	}

	options.AddOnArgs(cmd, on)
	options.AddWeatherArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
