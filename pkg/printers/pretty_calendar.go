package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/weather"
)

const (
	weekHeader = "Su   Mo   Tu   We   Th   Fr   Sa"
	cellWidth  = 5 // "14😊 "
)

var width = len(weekHeader)

// Month prints the grid of g with the moods and markers of days.
func (pp *PrettyPrint) Month(g calendar.Grid, days []calendar.Day) {
	tf := color.New(color.FgWhite, color.Italic)
	hf := color.New(color.Faint)

	m := g.Title()
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = hf.Fprintln(pp.out(), weekHeader)

	byDay := make(map[int]calendar.Day, len(days))
	for _, d := range days {
		byDay[d.Day] = d
	}

	for _, week := range g.Weeks() {
		for col, day := range week {
			sep := " "
			if col == len(week)-1 {
				sep = "\n"
			}
			if day == 0 {
				_, _ = fmt.Fprint(pp.out(), strings.Repeat(" ", cellWidth-1)+sep)
				continue
			}
			info := byDay[day]
			_, _ = dayColor(info).Fprintf(pp.out(), "%2d", day)
			_, _ = fmt.Fprint(pp.out(), moodCell(info.Mood)+sep)
		}
	}
	pp.NewLine()
}

func dayColor(d calendar.Day) *color.Color {
	attrs := []color.Attribute{}
	switch {
	case d.Today:
		attrs = append(attrs, color.Bold, color.FgHiWhite)
	case d.Past:
		attrs = append(attrs, color.Faint)
	}
	if d.Selected {
		attrs = append(attrs, color.Underline, color.FgHiYellow)
	}
	return color.New(attrs...)
}

// moodCell renders two columns: the symbol, or blank.
func moodCell(m mood.Mood) string {
	if m == mood.None {
		return "  "
	}
	if !m.Known() {
		return "? "
	}
	return string(m)
}

// Heading prints the selected date and the current temperature.
func (pp *PrettyPrint) Heading(selected time.Time, s weather.Snapshot) {
	t := color.New(color.Bold)
	_, _ = t.Fprintln(pp.out(), LongDate(selected))
	pp.Temperature(s)
}
