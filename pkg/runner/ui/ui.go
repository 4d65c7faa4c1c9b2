// Package ui opens the interactive calendar.
package ui

import (
	"context"
	"errors"
	"log/slog"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/logging"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/tui"
)

type UI struct {
	Service *app.Service
	// Watcher, when set, reloads the calendar on outside writes.
	Watcher store.Watcher
	Log     *slog.Logger

	// run is replaced in tests.
	run func(*app.Service, ...tui.Option) error
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not open ui, no service")
	}
	log := logging.Component(d.Log, "ui")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := []tui.Option{tui.WithLogger(d.Log)}
	if d.Watcher != nil {
		events, err := d.Watcher.Watch(ctx)
		if err != nil {
			log.Warn("not watching the store", "error", err)
		} else {
			opts = append(opts, tui.WithEvents(events))
		}
	}

	run := d.run
	if run == nil {
		run = tui.Run
	}
	return run(d.Service, opts...)
}
