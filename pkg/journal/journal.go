// Package journal holds the date-keyed collection of mood entries.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/entry"
	"tableflip.dev/moodiary/pkg/mood"
)

var (
	ErrNilEntry    = errors.New("journal: entry required")
	ErrMissingMood = errors.New("journal: mood required")
	ErrMissingNote = errors.New("journal: note required")
	ErrInvalidDate = errors.New("journal: invalid date")
	ErrNotEditable = errors.New("journal: date is outside the edit window")
)

// Journal keeps at most one entry per date, in write order. Replacing an
// entry keeps its original slot.
type Journal struct {
	entries []*entry.Entry
	index   map[string]int
}

// New builds a journal from entries. A later entry with an already seen
// date replaces the earlier one in its slot.
func New(entries ...*entry.Entry) *Journal {
	j := &Journal{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		if e == nil {
			continue
		}
		j.put(e.Clone())
	}
	return j
}

// Upsert writes e if it has a mood, a note and a date inside the edit
// window relative to today. Nothing is mutated when an error is returned.
func (j *Journal) Upsert(e *entry.Entry, today time.Time) error {
	if err := Check(e, today); err != nil {
		return err
	}
	j.put(e.Clone())
	return nil
}

// Check validates e against the save preconditions without writing.
func Check(e *entry.Entry, today time.Time) error {
	if e == nil {
		return ErrNilEntry
	}
	if e.Mood == mood.None {
		return ErrMissingMood
	}
	if e.Note == "" {
		return ErrMissingNote
	}
	day, err := e.Day(today.Location())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if !calendar.IsEditable(day, today) {
		return fmt.Errorf("%w: %s", ErrNotEditable, e.Date)
	}
	return nil
}

// put stores e, which must be owned by the journal, under its canonical key.
func (j *Journal) put(e *entry.Entry) {
	e.Date = canonicalKey(e.Date)
	if j.index == nil {
		j.index = make(map[string]int)
	}
	if i, ok := j.index[e.Date]; ok {
		j.entries[i] = e
		return
	}
	j.index[e.Date] = len(j.entries)
	j.entries = append(j.entries, e)
}

// MoodFor returns the mood stored for date, or mood.None.
func (j *Journal) MoodFor(date string) mood.Mood {
	if e, ok := j.Get(date); ok {
		return e.Mood
	}
	return mood.None
}

// Get returns a copy of the entry stored for date.
func (j *Journal) Get(date string) (*entry.Entry, bool) {
	if j == nil {
		return nil, false
	}
	i, ok := j.index[canonicalKey(date)]
	if !ok {
		return nil, false
	}
	return j.entries[i].Clone(), true
}

// All returns copies of every entry in storage order.
func (j *Journal) All() []*entry.Entry {
	if j == nil {
		return []*entry.Entry{}
	}
	out := make([]*entry.Entry, 0, len(j.entries))
	for _, e := range j.entries {
		out = append(out, e.Clone())
	}
	return out
}

// Len is the number of stored dates.
func (j *Journal) Len() int {
	if j == nil {
		return 0
	}
	return len(j.entries)
}

// MarshalJSON encodes the journal as an array of entries.
func (j *Journal) MarshalJSON() ([]byte, error) {
	if j == nil || j.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(j.entries)
}

// Encode serialises the journal.
func Encode(j *Journal) ([]byte, error) {
	return json.Marshal(j)
}

// Decode reads a serialised journal. It always returns a usable journal:
// an empty or unreadable blob yields an empty one, with the decode error
// returned for logging.
func Decode(data []byte) (*Journal, error) {
	if len(data) == 0 {
		return New(), nil
	}
	var list []*entry.Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return New(), fmt.Errorf("journal: decode: %w", err)
	}
	return New(list...), nil
}

// canonicalKey re-renders a parseable key with entry.DateKey so "01/02/2027"
// and "1/2/2027" name the same day. Unparseable keys are kept verbatim.
func canonicalKey(date string) string {
	day, err := entry.ParseDate(date, time.UTC)
	if err != nil {
		return date
	}
	return entry.DateKey(day)
}
