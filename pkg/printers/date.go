package printers

import (
	"fmt"
	"time"
)

// Ordinal returns the English suffix for a day of the month.
func Ordinal(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// LongDate renders t as "14th October 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d%s %s %d", t.Day(), Ordinal(t.Day()), t.Month(), t.Year())
}
