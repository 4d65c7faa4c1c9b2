package calendar

import "time"

// StartOfDay truncates t to midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsEditable reports whether candidate is today or later, compared at day
// granularity in today's location.
func IsEditable(candidate, today time.Time) bool {
	return !civil(candidate.In(today.Location())).Before(civil(today))
}

// IsPast is the negation of IsEditable.
func IsPast(candidate, today time.Time) bool {
	return !IsEditable(candidate, today)
}

// civil moves the calendar day onto UTC so DST shifts cannot disturb the
// comparison.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
