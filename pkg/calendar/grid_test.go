package calendar

import (
	"testing"
	"time"
)

func TestGenerateDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 1, 29},
		{2023, 1, 28},
		{2000, 1, 29},
		{1900, 1, 28},
		{2024, 0, 31},
		{2024, 3, 30},
		{2024, 11, 31},
	}
	for _, tt := range tests {
		g := Generate(tt.year, tt.month)
		if g.DaysInMonth != tt.want {
			t.Errorf("Generate(%d, %d).DaysInMonth = %d, want %d", tt.year, tt.month, g.DaysInMonth, tt.want)
		}
		if len(g.Days) != tt.want {
			t.Errorf("Generate(%d, %d) has %d days, want %d", tt.year, tt.month, len(g.Days), tt.want)
		}
		for i, d := range g.Days {
			if d != i+1 {
				t.Fatalf("day %d out of order: %d", i, d)
			}
		}
	}
}

func TestGenerateMatchesGregorianCalendar(t *testing.T) {
	for year := 1999; year <= 2030; year++ {
		for month := 0; month < 12; month++ {
			g := Generate(year, month)
			last := time.Date(year, time.Month(month+1), g.DaysInMonth, 0, 0, 0, 0, time.UTC)
			next := last.AddDate(0, 0, 1)
			if last.Month() != time.Month(month+1) || next.Day() != 1 {
				t.Fatalf("%d-%02d: %d days is wrong", year, month+1, g.DaysInMonth)
			}
		}
	}
}

func TestFirstWeekdayOffset(t *testing.T) {
	// October 1st 2026 is a Thursday, September 1st 2024 a Sunday.
	if got := Generate(2026, 9).FirstWeekdayOffset; got != 4 {
		t.Fatalf("expected offset 4, got %d", got)
	}
	if got := Generate(2024, 8).FirstWeekdayOffset; got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
}

func TestGenerateNormalizesMonth(t *testing.T) {
	g := Generate(2024, 12)
	if g.Year != 2025 || g.Month != 0 || g.DaysInMonth != 31 {
		t.Fatalf("unexpected grid %+v", g)
	}
	g = Generate(2024, -11)
	if g.Year != 2023 || g.Month != 1 || g.DaysInMonth != 28 {
		t.Fatalf("unexpected grid %+v", g)
	}
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		year, month, delta int
		wantYear, wantMon  int
	}{
		{2024, 0, -1, 2023, 11},
		{2023, 11, 1, 2024, 0},
		{2024, 5, 13, 2025, 6},
		{2024, 5, -18, 2022, 11},
		{2024, 5, 0, 2024, 5},
		{2024, 0, -12, 2023, 0},
		{2024, 0, -13, 2022, 11},
		{2024, 11, 25, 2027, 0},
	}
	for _, tt := range tests {
		y, m := ShiftMonth(tt.year, tt.month, tt.delta)
		if y != tt.wantYear || m != tt.wantMon {
			t.Errorf("ShiftMonth(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.year, tt.month, tt.delta, y, m, tt.wantYear, tt.wantMon)
		}
	}
}

func TestWeeksAndClickMapping(t *testing.T) {
	g := Generate(2026, 9) // October 2026, starts Thursday
	weeks := g.Weeks()
	if len(weeks) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(weeks))
	}
	if weeks[0][3] != 0 || weeks[0][4] != 1 {
		t.Fatalf("unexpected first row %v", weeks[0])
	}
	if day, ok := g.DayAt(4, 6); !ok || day != 31 {
		t.Fatalf("expected day 31 at (4,6), got %d %v", day, ok)
	}
	if _, ok := g.DayAt(0, 0); ok {
		t.Fatalf("expected padding cell at (0,0)")
	}
	for _, d := range g.Days {
		r, c, ok := g.Cell(d)
		if !ok {
			t.Fatalf("no cell for %d", d)
		}
		if back, _ := g.DayAt(r, c); back != d {
			t.Fatalf("cell round trip for %d gave %d", d, back)
		}
	}
	if g.Title() != "October 2026" {
		t.Fatalf("unexpected title %q", g.Title())
	}
}
