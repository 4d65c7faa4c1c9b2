package calendar

import (
	"time"

	"tableflip.dev/moodiary/pkg/entry"
	"tableflip.dev/moodiary/pkg/mood"
)

// Day is one annotated cell of a month grid.
type Day struct {
	Day      int
	Date     string
	Mood     mood.Mood
	Past     bool
	Today    bool
	Selected bool
}

// Annotate decorates every day of g. lookup returns the mood stored for a
// date key, or mood.None.
func Annotate(g Grid, lookup func(date string) mood.Mood, today, selected time.Time) []Day {
	loc := today.Location()
	out := make([]Day, 0, g.DaysInMonth)
	for _, d := range g.Days {
		date := g.Date(d, loc)
		key := entry.DateKey(date)
		day := Day{
			Day:      d,
			Date:     key,
			Past:     IsPast(date, today),
			Today:    entry.SameDay(date, today),
			Selected: !selected.IsZero() && key == entry.DateKey(selected.In(loc)),
		}
		if lookup != nil {
			day.Mood = lookup(key)
		}
		out = append(out, day)
	}
	return out
}
