package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where the journal is stored.",
		Example: `
moodiary info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := setup(cmd.Context(), oo)
			if err != nil {
				return err
			}
			defer e.Close()

			s := info.Info{
				Config:      e.cfg,
				Persistence: e.persistence,
			}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
