package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/moodiary/pkg/config"
	"tableflip.dev/moodiary/pkg/journal"
	"tableflip.dev/moodiary/pkg/store"
)

// Lister is a persistence that can enumerate its keys.
type Lister interface {
	store.Persistence
	Keys(ctx context.Context) []string
}

type Info struct {
	Config      *config.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(config.EnvConfigPath); override != "" {
		_, _ = fmt.Fprintln(out, config.EnvConfigPath, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, config.EnvConfigPath, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}

	if n.Config.File != "" {
		_, _ = fmt.Fprintln(out, "Config.file:", n.Config.File)
	}
	_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	if n.Config.Weather.Enabled() {
		_, _ = fmt.Fprintf(out, "Weather: %g,%g (%s)\n", n.Config.Weather.Latitude, n.Config.Weather.Longitude, n.Config.Weather.Units)
	} else {
		_, _ = fmt.Fprintln(out, "Weather: disabled")
	}

	if n.Persistence == nil {
		return errors.New("failed to create persistence object")
	}

	blob, _ := n.Persistence.Load(store.KeyEntries)
	j, err := journal.Decode(blob)
	if err != nil {
		_, _ = fmt.Fprintln(out, "Entries: unreadable,", err)
	} else {
		_, _ = fmt.Fprintln(out, "Entries:", j.Len())
	}

	l, ok := n.Persistence.(Lister)
	if !ok {
		return nil
	}
	_, _ = fmt.Fprintf(out, "Keys:\n")
	found := 0
	for _, k := range l.Keys(ctx) {
		_, _ = fmt.Fprintf(out, "  %s\n", k)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no keys")
	}
	return nil
}
