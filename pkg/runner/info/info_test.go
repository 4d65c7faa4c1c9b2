package info

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/moodiary/pkg/config"
	"tableflip.dev/moodiary/pkg/entry"
	"tableflip.dev/moodiary/pkg/journal"
	"tableflip.dev/moodiary/pkg/logging"
	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/weather"
)

type basePath string

func (b basePath) BasePath() string { return string(b) }

func TestInfo(t *testing.T) {
	t.Setenv(config.EnvConfigPath, "")
	dir := t.TempDir()
	disk, err := store.Load(basePath(dir), logging.Discard())
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	blob, _ := journal.Encode(journal.New(entry.New(time.Now(), mood.Happy, "ok", weather.Snapshot{})))
	disk.Save(store.KeyEntries, blob)

	var buf bytes.Buffer
	n := Info{Config: &config.Config{Path: dir}, Persistence: disk, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"env var not set", "Config.path: " + dir, "Weather: disabled", "Entries: 1", "  " + store.KeyEntries} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestInfoWithoutPersistence(t *testing.T) {
	n := Info{Config: &config.Config{Path: t.TempDir()}, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected error without persistence")
	}
}
