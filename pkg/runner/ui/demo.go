package ui

import (
	"time"

	"tableflip.dev/moodiary/pkg/entry"
	"tableflip.dev/moodiary/pkg/journal"
	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/weather"
)

// StaticDemo is a couple of weeks of history ending the day before today.
func StaticDemo(today time.Time) []*entry.Entry {
	day := func(n int) time.Time { return today.AddDate(0, 0, -n) }

	e := make([]*entry.Entry, 0, 8)
	e = append(e,
		entry.New(day(12), mood.Neutral, "first day back at work", weather.Reading(14, "Clouds")),
		entry.New(day(10), mood.Sad, "missed the bus in the rain", weather.Reading(9.5, "Rain")),
		entry.New(day(9), mood.Angry, "the build broke twice", weather.Reading(11, "Drizzle")),
		entry.New(day(7), mood.Happy, "long walk by the river", weather.Reading(17, "Clear")),
		entry.New(day(5), mood.VeryHappy, "friends over for dinner", weather.Reading(18.5, "Clear")),
		entry.New(day(4), mood.Happy, "finished the book", weather.Snapshot{}),
		entry.New(day(2), mood.Neutral, "quiet day", weather.Reading(13, "Mist")),
		entry.New(day(1), mood.Happy, "picked apples", weather.Reading(15, "Clouds")),
	)
	return e
}

// SeedDemo writes StaticDemo into p.
func SeedDemo(p store.Persistence, today time.Time) error {
	blob, err := journal.Encode(journal.New(StaticDemo(today)...))
	if err != nil {
		return err
	}
	p.Save(store.KeyEntries, blob)
	return nil
}
