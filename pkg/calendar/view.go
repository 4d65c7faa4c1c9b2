package calendar

import (
	"encoding/json"
	"fmt"
	"time"
)

// View is the persisted (year, month) the calendar shows.
type View struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// ViewOf returns the view containing t.
func ViewOf(t time.Time) View {
	return View{Year: t.Year(), Month: int(t.Month()) - 1}
}

// Shift moves the view by delta months.
func (v View) Shift(delta int) View {
	y, m := ShiftMonth(v.Year, v.Month, delta)
	return View{Year: y, Month: m}
}

// Grid generates the grid of the view.
func (v View) Grid() Grid {
	return Generate(v.Year, v.Month)
}

// Contains reports whether t falls in the viewed month.
func (v View) Contains(t time.Time) bool {
	return ViewOf(t) == v
}

func (v View) String() string {
	return v.Grid().Title()
}

// Marshal encodes the view.
func (v View) Marshal() ([]byte, error) {
	return json.Marshal(v)
}

// DecodeView reads a stored view. A missing or unreadable blob falls back to
// the month of now; the error is returned for logging only.
func DecodeView(data []byte, now time.Time) (View, error) {
	if len(data) == 0 {
		return ViewOf(now), nil
	}
	var v View
	if err := json.Unmarshal(data, &v); err != nil {
		return ViewOf(now), fmt.Errorf("calendar: decode view: %w", err)
	}
	if v.Year <= 0 {
		return ViewOf(now), fmt.Errorf("calendar: decode view: invalid year %d", v.Year)
	}
	return v.Shift(0), nil
}
