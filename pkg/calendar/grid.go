// Package calendar lays out month grids and decides which days may be
// written to.
package calendar

import "time"

// Grid is the day layout of one month. Month is zero based (0 = January).
type Grid struct {
	Year  int
	Month int

	// DaysInMonth is the length of the month.
	DaysInMonth int
	// FirstWeekdayOffset is the column of day 1, Sunday being column 0.
	FirstWeekdayOffset int
	// Days is 1..DaysInMonth.
	Days []int
}

// Generate builds the grid for (year, month). Months outside 0..11 are
// carried into the year the same way ShiftMonth does.
func Generate(year, month int) Grid {
	year, month = ShiftMonth(year, month, 0)

	first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	days := DaysIn(year, month)

	g := Grid{
		Year:               year,
		Month:              month,
		DaysInMonth:        days,
		FirstWeekdayOffset: int(first.Weekday()),
		Days:               make([]int, days),
	}
	for i := range g.Days {
		g.Days[i] = i + 1
	}
	return g
}

// DaysIn returns the number of days in (year, month), month zero based.
func DaysIn(year, month int) int {
	year, month = ShiftMonth(year, month, 0)
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC).Day()
}

// ShiftMonth adds delta months to (year, month), wrapping the month into
// 0..11 and carrying the overflow into the year.
func ShiftMonth(year, month, delta int) (int, int) {
	total := year*12 + month + delta
	y := total / 12
	m := total % 12
	if m < 0 {
		m += 12
		y--
	}
	return y, m
}

// Rows is the number of week rows needed to show the month.
func (g Grid) Rows() int {
	return (g.FirstWeekdayOffset + g.DaysInMonth + 6) / 7
}

// Weeks returns the month as rows of seven cells; padding cells are 0.
func (g Grid) Weeks() [][]int {
	rows := make([][]int, g.Rows())
	for r := range rows {
		rows[r] = make([]int, 7)
		for c := range rows[r] {
			if day, ok := g.DayAt(r, c); ok {
				rows[r][c] = day
			}
		}
	}
	return rows
}

// DayAt maps a grid cell to a day number. ok is false for padding cells.
func (g Grid) DayAt(row, col int) (int, bool) {
	if row < 0 || col < 0 || col > 6 {
		return 0, false
	}
	day := row*7 + col - g.FirstWeekdayOffset + 1
	if day < 1 || day > g.DaysInMonth {
		return 0, false
	}
	return day, true
}

// Cell is the inverse of DayAt.
func (g Grid) Cell(day int) (row, col int, ok bool) {
	if day < 1 || day > g.DaysInMonth {
		return 0, 0, false
	}
	idx := g.FirstWeekdayOffset + day - 1
	return idx / 7, idx % 7, true
}

// Date returns midnight of day in loc (time.Local when nil).
func (g Grid) Date(day int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(g.Year, time.Month(g.Month+1), day, 0, 0, 0, 0, loc)
}

// Title renders "October 2026".
func (g Grid) Title() string {
	return time.Date(g.Year, time.Month(g.Month+1), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
