// Package weather supplies the optional temperature/condition snapshot
// recorded with an entry at save time.
package weather

import "fmt"

// Snapshot is the weather observed when an entry was saved. A nil
// Temperature means the reading was not available.
type Snapshot struct {
	Temperature *float64 `json:"temp"`
	Condition   string   `json:"condition"`
}

// Known reports whether the snapshot carries a temperature.
func (s Snapshot) Known() bool {
	return s.Temperature != nil
}

// Celsius renders the temperature, or "" when unknown.
func (s Snapshot) Celsius() string {
	if s.Temperature == nil {
		return ""
	}
	return fmt.Sprintf("%g°C", *s.Temperature)
}

// Provider hands out the latest snapshot. The bool is false while the
// reading is still pending, which may be forever.
type Provider interface {
	Snapshot() (Snapshot, bool)
}

// Current returns the provider's snapshot or the empty pending snapshot.
func Current(p Provider) Snapshot {
	if p == nil {
		return Snapshot{}
	}
	s, ok := p.Snapshot()
	if !ok {
		return Snapshot{}
	}
	return s
}

// Pending never resolves.
type Pending struct{}

func (Pending) Snapshot() (Snapshot, bool) { return Snapshot{}, false }

// Static always returns the same snapshot.
type Static Snapshot

func (s Static) Snapshot() (Snapshot, bool) { return Snapshot(s), true }

// Reading builds a snapshot for a known temperature.
func Reading(temp float64, condition string) Snapshot {
	return Snapshot{Temperature: &temp, Condition: condition}
}
