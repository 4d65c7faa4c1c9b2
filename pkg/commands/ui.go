package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	demo := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
moodiary ui
moodiary ui --ephemeral --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, demo)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Fill the journal with sample entries first, best used with --ephemeral.")

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, demo bool) error {
	e, err := setup(cmd.Context(), oo)
	if err != nil {
		return err
	}
	defer e.Close()

	if demo {
		if err := ui.SeedDemo(e.persistence, time.Now()); err != nil {
			return err
		}
		e.svc.Reload()
	}

	i := ui.UI{Service: e.svc, Watcher: e.watcher, Log: e.log}
	return i.Do(cmd.Context())
}
