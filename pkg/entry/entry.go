package entry

import (
	"fmt"
	"time"

	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/weather"
)

// New builds an entry keyed by the calendar day of on.
func New(on time.Time, m mood.Mood, note string, w weather.Snapshot) *Entry {
	return &Entry{
		Mood:    m,
		Note:    note,
		Date:    DateKey(on),
		Weather: w,
	}
}

// Entry is one day of the journal. Date is the unique key.
type Entry struct {
	Mood    mood.Mood        `json:"mood"`
	Note    string           `json:"note"`
	Date    string           `json:"date"`
	Weather weather.Snapshot `json:"weather"`
}

// Day parses the entry key back into local midnight.
func (e *Entry) Day(loc *time.Location) (time.Time, error) {
	return ParseDate(e.Date, loc)
}

// Clone returns a deep copy.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	cp := *e
	if e.Weather.Temperature != nil {
		t := *e.Weather.Temperature
		cp.Weather.Temperature = &t
	}
	return &cp
}

func (e *Entry) String() string {
	if e.Weather.Known() {
		return fmt.Sprintf("%s %s  %s (%s)", e.Date, e.Mood, e.Note, e.Weather.Celsius())
	}
	return fmt.Sprintf("%s %s  %s", e.Date, e.Mood, e.Note)
}
