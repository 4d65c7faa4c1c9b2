package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/logging"
	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/weather"
)

func init() {
	color.NoColor = true
}

var testNow = time.Date(2026, time.October, 14, 10, 30, 0, 0, time.Local)

func newService(t *testing.T, mem *store.Memory, opts ...app.Option) *app.Service {
	t.Helper()
	opts = append([]app.Option{app.WithClock(func() time.Time { return testNow }), app.WithLogger(logging.Discard())}, opts...)
	svc, err := app.New(mem, opts...)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestLogSaves(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(t, mem)
	var buf bytes.Buffer

	n := Log{Service: svc, Mood: mood.Happy, Note: "good day", Out: &buf, Log: logging.Discard()}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), SavedMessage) {
		t.Fatalf("expected success message, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "October 2026") || !strings.Contains(buf.String(), "14😊") {
		t.Fatalf("expected the month grid with the new mood, got:\n%s", buf.String())
	}
	if svc.MoodFor(testNow) != mood.Happy {
		t.Fatalf("expected entry to be stored")
	}
}

func TestLogRejectionIsSilent(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(t, mem)
	var buf, logs bytes.Buffer

	past := testNow.AddDate(0, 0, -2)
	tests := []Log{
		{Mood: mood.Happy},
		{Note: "no mood"},
		{Mood: mood.Sad, Note: "too late", On: &past},
	}
	for _, n := range tests {
		n.Service = svc
		n.Out = &buf
		n.Log = logging.New(&logs, slog.LevelDebug)
		if err := n.Do(context.Background()); err != nil {
			t.Fatalf("rejections must not error, got %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
	if strings.Count(logs.String(), "entry not saved") != len(tests) {
		t.Fatalf("expected a warning per rejection, got:\n%s", logs.String())
	}
	if mem.Saves() != 0 {
		t.Fatalf("expected no persistence")
	}
}

type waiter struct{ waited time.Duration }

func (w *waiter) Wait(ctx context.Context) {
	dl, _ := ctx.Deadline()
	w.waited = time.Until(dl)
}

func TestLogWaitsForWeather(t *testing.T) {
	svc := newService(t, store.NewMemory(), app.WithWeather(weather.Static(weather.Reading(20, "Clear"))))
	w := &waiter{}
	n := Log{Service: svc, Mood: mood.Happy, Note: "warm", Weather: w, WeatherWait: time.Second, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if w.waited <= 0 || w.waited > time.Second {
		t.Fatalf("expected a bounded wait, got %v", w.waited)
	}
	e, ok := svc.Entry(testNow)
	if !ok || e.Weather.Condition != "Clear" {
		t.Fatalf("expected weather on the entry, got %+v", e)
	}
}

func TestLogPrintsMonthOfSavedDate(t *testing.T) {
	mem := store.NewMemory()
	svc := newService(t, mem)
	var buf bytes.Buffer

	on := time.Date(2026, time.November, 3, 0, 0, 0, 0, time.Local)
	n := Log{Service: svc, Mood: mood.Sad, Note: "grey", On: &on, Out: &buf, Log: logging.Discard()}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "November 2026") || !strings.Contains(buf.String(), " 3😞") {
		t.Fatalf("expected November with the new mood, got:\n%s", buf.String())
	}
	if got := svc.View(); got.Month != 9 {
		t.Fatalf("printing must not move the persisted view, got %+v", got)
	}
}
