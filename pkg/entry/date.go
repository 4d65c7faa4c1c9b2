package entry

import (
	"fmt"
	"time"
)

// DateLayout is the short date rendering used as the entry key.
const DateLayout = "1/2/2006"

// DateKey renders the calendar day of t, ignoring time of day.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a key back to midnight in loc (time.Local when nil).
func ParseDate(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("entry: invalid date key %q: %w", key, err)
	}
	return t, nil
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return DateKey(a) == DateKey(b)
}
