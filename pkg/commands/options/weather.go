package options

import (
	"time"

	"github.com/spf13/cobra"
)

// WeatherOptions bounds how long a save waits for the weather lookup.
type WeatherOptions struct {
	Wait time.Duration
}

func AddWeatherArgs(cmd *cobra.Command, o *WeatherOptions) {
	cmd.Flags().DurationVar(&o.Wait, "weather-wait", 0,
		"Wait up to this long for the weather before saving, example: --weather-wait=2s.")
}
