package ui

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/logging"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/tui"
)

func TestSeedDemo(t *testing.T) {
	today := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.Local)
	mem := store.NewMemory()
	if err := SeedDemo(mem, today); err != nil {
		t.Fatalf("seed: %v", err)
	}
	svc, err := app.New(mem, app.WithClock(func() time.Time { return today }), app.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if n := len(svc.Entries()); n != len(StaticDemo(today)) {
		t.Fatalf("expected %d entries, got %d", len(StaticDemo(today)), n)
	}
	if svc.Trend().Empty() {
		t.Fatalf("expected a trend for the demo")
	}
}

func TestDoWiresWatcher(t *testing.T) {
	mem := store.NewMemory()
	svc, err := app.New(mem, app.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	var got int
	u := UI{
		Service: svc,
		Watcher: mem,
		Log:     logging.Discard(),
		run: func(s *app.Service, opts ...tui.Option) error {
			got = len(opts)
			return nil
		},
	}
	if err := u.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if got != 2 {
		t.Fatalf("expected logger and events options, got %d", got)
	}

	if err := (&UI{}).Do(context.Background()); err == nil {
		t.Fatalf("expected error without service")
	}
}
