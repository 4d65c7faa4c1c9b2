package journal

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/moodiary/pkg/entry"
	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/weather"
)

var today = time.Date(2026, time.October, 14, 15, 0, 0, 0, time.Local)

func newEntry(day time.Time, m mood.Mood, note string) *entry.Entry {
	return entry.New(day, m, note, weather.Snapshot{})
}

func TestUpsertReplacesInPlace(t *testing.T) {
	j := New()
	first := today
	second := today.AddDate(0, 0, 1)
	third := today.AddDate(0, 0, 2)

	for _, e := range []*entry.Entry{
		newEntry(first, mood.Sad, "one"),
		newEntry(second, mood.Happy, "two"),
		newEntry(third, mood.Neutral, "three"),
	} {
		if err := j.Upsert(e, today); err != nil {
			t.Fatalf("upsert %s: %v", e.Date, err)
		}
	}

	if err := j.Upsert(newEntry(second, mood.VeryHappy, "two again"), today); err != nil {
		t.Fatalf("replace: %v", err)
	}

	all := j.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	if all[1].Date != entry.DateKey(second) || all[1].Note != "two again" || all[1].Mood != mood.VeryHappy {
		t.Fatalf("expected replacement in slot 1, got %+v", all[1])
	}
	if all[0].Note != "one" || all[2].Note != "three" {
		t.Fatalf("neighbours moved: %v", all)
	}
}

func TestUpsertFullOverwrite(t *testing.T) {
	j := New()
	withWeather := entry.New(today, mood.Happy, "sunny", weather.Reading(21, "Clear"))
	if err := j.Upsert(withWeather, today); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := j.Upsert(newEntry(today, mood.Sad, "later"), today); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, ok := j.Get(entry.DateKey(today))
	if !ok {
		t.Fatalf("missing entry")
	}
	if got.Weather.Known() {
		t.Fatalf("expected weather to be overwritten, got %+v", got.Weather)
	}
}

func TestUpsertRejects(t *testing.T) {
	tests := map[string]struct {
		e    *entry.Entry
		want error
	}{
		"nil":       {nil, ErrNilEntry},
		"no mood":   {newEntry(today, mood.None, "note"), ErrMissingMood},
		"no note":   {newEntry(today, mood.Happy, ""), ErrMissingNote},
		"yesterday": {newEntry(today.AddDate(0, 0, -1), mood.Happy, "late"), ErrNotEditable},
		"last year": {newEntry(today.AddDate(-1, 0, 0), mood.Angry, "old"), ErrNotEditable},
		"bad date":  {&entry.Entry{Date: "2026-10-14", Mood: mood.Happy, Note: "x"}, ErrInvalidDate},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			j := New()
			err := j.Upsert(tt.e, today)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if j.Len() != 0 {
				t.Fatalf("journal mutated on rejected upsert")
			}
		})
	}
}

func TestUpsertAcceptsUnknownMood(t *testing.T) {
	j := New()
	if err := j.Upsert(newEntry(today, "🤖", "beep"), today); err != nil {
		t.Fatalf("unknown moods belong to the caller to reject: %v", err)
	}
	if j.MoodFor(entry.DateKey(today)) != "🤖" {
		t.Fatalf("unexpected mood")
	}
}

func TestRejectedReplacementKeepsExisting(t *testing.T) {
	j := New()
	if err := j.Upsert(newEntry(today, mood.Happy, "keep"), today); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := j.Upsert(newEntry(today, mood.Sad, ""), today); !errors.Is(err, ErrMissingNote) {
		t.Fatalf("expected ErrMissingNote, got %v", err)
	}
	if got, _ := j.Get(entry.DateKey(today)); got.Note != "keep" {
		t.Fatalf("existing entry changed: %+v", got)
	}
}

func TestMoodFor(t *testing.T) {
	j := New(newEntry(today, mood.Neutral, "meh"))
	if got := j.MoodFor(entry.DateKey(today)); got != mood.Neutral {
		t.Fatalf("expected neutral, got %q", got)
	}
	if got := j.MoodFor("1/1/1999"); got != mood.None {
		t.Fatalf("expected none, got %q", got)
	}
}

func TestAllReturnsCopies(t *testing.T) {
	j := New(newEntry(today, mood.Neutral, "meh"))
	j.All()[0].Note = "changed"
	if got, _ := j.Get(entry.DateKey(today)); got.Note != "meh" {
		t.Fatalf("All leaked internal state")
	}
}

func TestRoundTrip(t *testing.T) {
	j := New(
		entry.New(today, mood.Happy, "ok", weather.Reading(12.5, "Clouds")),
		newEntry(today.AddDate(0, 0, -3), mood.Sad, "past entries survive decoding"),
		newEntry(today.AddDate(0, 1, 0), "🤖", "unknown"),
	)
	b, err := Encode(j)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(j.All(), back.All()) {
		t.Fatalf("round trip mismatch:\n%v\n%v", j.All(), back.All())
	}
}

func TestDecodeCorrupt(t *testing.T) {
	for _, blob := range []string{"", "{", "null", `{"mood":"😊"}`, "[1,2,3]"} {
		j, err := Decode([]byte(blob))
		if j == nil {
			t.Fatalf("Decode(%q) returned nil journal", blob)
		}
		if j.Len() != 0 {
			t.Fatalf("Decode(%q) expected empty journal, got %d entries", blob, j.Len())
		}
		if blob == "" && err != nil {
			t.Fatalf("empty blob should not be an error: %v", err)
		}
	}
}

func TestDecodeOriginalFormat(t *testing.T) {
	blob := `[{"mood":"😊","note":"ok","date":"10/14/2026","weather":{"temp":null,"condition":""}},` +
		`{"mood":"😡","note":"traffic","date":"10/15/2026","weather":{"temp":18.2,"condition":"Rain"}}]`
	j, err := Decode([]byte(blob))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	all := j.All()
	if len(all) != 2 || all[1].Weather.Condition != "Rain" || *all[1].Weather.Temperature != 18.2 {
		t.Fatalf("unexpected entries %v", all)
	}
	b, _ := Encode(j)
	if string(b) != blob {
		t.Fatalf("expected byte-identical encoding:\n%s\n%s", blob, b)
	}
}

func TestEncodeEmpty(t *testing.T) {
	b, err := Encode(New())
	if err != nil || string(b) != "[]" {
		t.Fatalf("expected [], got %s %v", b, err)
	}
}

func TestUpsertCanonicalisesPaddedDates(t *testing.T) {
	j := New(newEntry(today, mood.Happy, "a"))

	padded := &entry.Entry{Mood: mood.Sad, Note: "b", Date: "01/02/2027"}
	if err := j.Upsert(padded, today); err != nil {
		t.Fatalf("upsert padded: %v", err)
	}
	plain := &entry.Entry{Mood: mood.Neutral, Note: "c", Date: "1/2/2027"}
	if err := j.Upsert(plain, today); err != nil {
		t.Fatalf("upsert plain: %v", err)
	}

	if j.Len() != 2 {
		t.Fatalf("expected one entry per day, got %v", j.All())
	}
	e, ok := j.Get("1/2/2027")
	if !ok || e.Date != "1/2/2027" || e.Note != "c" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if j.MoodFor("01/02/2027") != mood.Neutral {
		t.Fatalf("padded lookup must find the same day")
	}
	if padded.Date != "01/02/2027" {
		t.Fatalf("upsert must not mutate its argument")
	}
}

func TestDecodeMergesPaddedDates(t *testing.T) {
	blob := []byte(`[{"mood":"😞","note":"x","date":"01/02/2027","weather":{"temp":null,"condition":""}},` +
		`{"mood":"😊","note":"y","date":"1/2/2027","weather":{"temp":null,"condition":""}}]`)
	j, err := Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	all := j.All()
	if len(all) != 1 || all[0].Date != "1/2/2027" || all[0].Note != "y" {
		t.Fatalf("expected the later record under the canonical key, got %v", all)
	}
}
