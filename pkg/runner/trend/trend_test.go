package trend

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/logging"
	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/trend"
)

func TestTrend(t *testing.T) {
	color.NoColor = true
	now := time.Date(2026, time.October, 14, 10, 30, 0, 0, time.Local)
	svc, err := app.New(store.NewMemory(), app.WithClock(func() time.Time { return now }), app.WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	var buf bytes.Buffer
	if err := (&Trend{Service: svc, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "No mood data available yet.") {
		t.Fatalf("expected empty trend, got %q", buf.String())
	}

	if _, err := svc.Save(mood.Sad, "meh"); err != nil {
		t.Fatalf("save: %v", err)
	}
	buf.Reset()
	n := Trend{Service: svc, Output: &options.OutputOptions{JSON: true}, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	var got trend.Series
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(got.Values) != 1 || got.Values[0] != 2 || got.Labels[0] != "10/14/2026" {
		t.Fatalf("unexpected series %+v", got)
	}
}
