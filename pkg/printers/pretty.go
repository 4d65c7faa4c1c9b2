package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/moodiary/pkg/entry"
	"tableflip.dev/moodiary/pkg/weather"
)

// PrettyPrint renders journal data for a terminal.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Width wraps notes; 0 means 40 columns.
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 40
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Success prints a confirmation line.
func (pp *PrettyPrint) Success(msg string) {
	g := color.New(color.FgGreen, color.Bold)
	_, _ = g.Fprintln(pp.out(), msg)
}

// Temperature prints the thermometer line: the reading, or Loading...
// while the lookup is pending.
func (pp *PrettyPrint) Temperature(s weather.Snapshot) {
	_, _ = fmt.Fprintf(pp.out(), "🌡️ %s\n", TemperatureText(s))
}

// TemperatureText renders the reading or Loading....
func TemperatureText(s weather.Snapshot) string {
	if !s.Known() {
		return "Loading..."
	}
	return s.Celsius()
}

// Notes prints entries as cards in storage order.
func (pp *PrettyPrint) Notes(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	d := color.New(color.Faint)
	for _, e := range entries {
		pp.Entry(e)
		_, _ = d.Fprintln(pp.out(), strings.Repeat("─", pp.width()))
	}
}

// Entry prints a single card.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	t := color.New()
	d := color.New(color.Faint)

	_, _ = y.Fprintln(pp.out(), e.Date)
	_, _ = t.Fprintf(pp.out(), "%s  %s\n", e.Mood, indent(wordwrap.String(e.Note, pp.width()), "    "))
	temp := "?"
	if e.Weather.Known() {
		temp = e.Weather.Celsius()
	}
	if e.Weather.Condition != "" {
		_, _ = d.Fprintf(pp.out(), "🌡️ %s %s\n", temp, e.Weather.Condition)
	} else {
		_, _ = d.Fprintf(pp.out(), "🌡️ %s\n", temp)
	}
}

// indent prefixes every line but the first.
func indent(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
