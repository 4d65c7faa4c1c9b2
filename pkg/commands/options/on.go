package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/entry"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the date a command works on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2026-10-14", --on="10/14/2026", --on="10/14" or --on=tomorrow.`)
}

// GetOn returns nil when no date was given. Dates resolve to midnight in
// the location of now; a short date keeps the year of now.
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	s := strings.TrimSpace(strings.ToLower(o.OnString))
	if s == "" {
		return nil, nil
	}
	loc := now.Location()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch s {
	case "today":
		return &midnight, nil
	case "tomorrow":
		t := midnight.AddDate(0, 0, 1)
		return &t, nil
	case "yesterday":
		t := midnight.AddDate(0, 0, -1)
		return &t, nil
	}

	for _, layout := range []string{layoutISO, entry.DateLayout} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t, nil
		}
	}
	t, err := time.ParseInLocation(layoutISOShort, s, loc)
	if err != nil {
		return nil, fmt.Errorf("unknown date %q", o.OnString)
	}
	d := time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	if d.Day() != t.Day() {
		return nil, fmt.Errorf("%s does not exist in %d", o.OnString, now.Year())
	}
	return &d, nil
}
