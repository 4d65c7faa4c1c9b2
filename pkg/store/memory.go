package store

import (
	"context"
	"sync"
)

// Memory is an in-process Persistence, used by tests and ephemeral runs.
type Memory struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	saves    int
	watchers []chan Event
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Load implements Persistence.
func (m *Memory) Load(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.blobs[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), b...), true
}

// Save implements Persistence.
func (m *Memory) Save(key string, blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = append([]byte(nil), blob...)
	m.saves++
	for _, ch := range m.watchers {
		select {
		case ch <- Event{Key: key}:
		default:
		}
	}
}

// Saves counts Save calls.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

// Watch implements Watcher; the channel closes when ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}
