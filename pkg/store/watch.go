package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long a key must stay quiet before its event is sent.
const settleDelay = 100 * time.Millisecond

// Event reports that the blob stored under Key changed.
type Event struct {
	Key string
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *Disk) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				p.log.Warn("watcher close", "error", err)
			}
		})
	}

	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		defer close(events)
		defer closeWatcher()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// The consumer reloads everything on any event, so a
				// dropped one is picked up by the next.
			}
		}

		// Writes are coalesced per key and sent once the burst settles.
		pending := make(map[string]struct{})
		var flush <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case <-flush:
				for key := range pending {
					send(Event{Key: key})
				}
				pending = make(map[string]struct{})
				flush = nil
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				p.log.Warn("watcher error", "error", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				key := p.keyForPath(evt.Name)
				if key == "" {
					continue
				}
				pending[key] = struct{}{}
				if flush == nil {
					flush = time.After(settleDelay)
				}
			}
		}
	}()

	return events, nil
}

// keyForPath maps a file under the base path back to its key.
func (p *Disk) keyForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." || strings.ContainsRune(rel, filepath.Separator) {
		return ""
	}
	if strings.HasPrefix(rel, ".") {
		return ""
	}
	return rel
}
