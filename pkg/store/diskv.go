package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/moodiary/pkg/logging"
)

// Keys used by moodiary.
const (
	KeyEntries = "moodHistory"
	KeyView    = "calendarView"
)

// Persistence is a best-effort blob store. Save never reports failure to
// the caller; implementations log and move on.
type Persistence interface {
	Load(key string) ([]byte, bool)
	Save(key string, blob []byte)
}

// Watcher is implemented by stores that can report changes made by other
// writers.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Config is the part of the configuration the disk store needs.
type Config interface {
	BasePath() string
}

// Disk is a Persistence backed by diskv, one file per key under BasePath.
type Disk struct {
	d        *diskv.Diskv
	basePath string
	log      *slog.Logger
}

// Load creates a Disk store rooted at cfg.BasePath().
func Load(cfg Config, log *slog.Logger) (*Disk, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	basePath := cfg.BasePath()
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		log:      logging.Component(log, "store"),
	}, nil
}

// BasePath is the directory holding the blobs.
func (p *Disk) BasePath() string {
	return p.basePath
}

// Load implements Persistence.
func (p *Disk) Load(key string) ([]byte, bool) {
	val, err := p.d.Read(key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			p.log.Warn("read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

// Save implements Persistence.
func (p *Disk) Save(key string, blob []byte) {
	if err := p.d.Write(key, blob); err != nil {
		p.log.Error("write failed", "key", key, "error", err)
		return
	}
	p.log.Debug("saved", "key", key, "bytes", len(blob))
}

// Keys lists the stored keys in name order.
func (p *Disk) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
