package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/config"
	"tableflip.dev/moodiary/pkg/logging"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/weather"
)

type globalOptions struct {
	Ephemeral bool
	LogLevel  string
}

func addGlobalArgs(cmd *cobra.Command, o *globalOptions) {
	cmd.PersistentFlags().BoolVar(&o.Ephemeral, "ephemeral", false,
		"Keep the journal in memory only, nothing is read or written on disk.")
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Override the configured log level: debug, info, warn or error.")
}

// env is everything a command needs, built from the config file.
type env struct {
	cfg         *config.Config
	log         *slog.Logger
	persistence store.Persistence
	watcher     store.Watcher
	weather     *weather.Async
	svc         *app.Service

	cancel context.CancelFunc
}

// Close stops the weather lookup.
func (e *env) Close() {
	if e.cancel != nil {
		e.cancel()
	}
}

func setup(ctx context.Context, o *globalOptions) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if o.LogLevel != "" {
		level = o.LogLevel
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, lvl)

	e := &env{cfg: cfg, log: log}

	if o.Ephemeral {
		mem := store.NewMemory()
		e.persistence, e.watcher = mem, mem
	} else {
		disk, err := store.Load(cfg, log)
		if err != nil {
			return nil, err
		}
		e.persistence, e.watcher = disk, disk
	}

	opts := []app.Option{app.WithLogger(log)}
	if cfg.Weather.Enabled() {
		wctx, cancel := context.WithTimeout(ctx, cfg.Weather.Timeout)
		e.cancel = cancel
		e.weather = weather.Start(wctx, cfg.Weather.Fetcher(), logging.Component(log, "weather"))
		opts = append(opts, app.WithWeather(e.weather))
	} else {
		log.Debug("weather disabled, set weather.api_key and a location to enable it")
	}

	e.svc, err = app.New(e.persistence, opts...)
	if err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

// waiter avoids handing a typed nil to runners.
func (e *env) waiter() interface{ Wait(context.Context) } {
	if e.weather == nil {
		return nil
	}
	return e.weather
}
