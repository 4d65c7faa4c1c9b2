package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/trend"
)

// NoTrend is printed when the series is empty.
const NoTrend = "No mood data available yet."

// Trend prints one row per point: date, mood, rank and a bar on a fixed
// 0..6 scale.
func (pp *PrettyPrint) Trend(s trend.Series) {
	if s.Empty() {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), NoTrend)
		return
	}

	bold := color.New(color.Bold)
	bar := color.New(color.FgYellow)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Mood"), bold.Sprint(""), bold.Sprint("Trend"))
	for i := range s.Values {
		v := s.Values[i]
		tbl.AddRow(s.Labels[i], mood.Describe(v), v, bar.Sprint(Bar(v)))
	}
	tbl.RightAlign(2)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Bar draws value on the trend scale.
func Bar(value int) string {
	if value < trend.MinValue {
		value = trend.MinValue
	}
	if value > trend.MaxValue {
		value = trend.MaxValue
	}
	return strings.Repeat("█", value) + strings.Repeat("·", trend.MaxValue-value)
}

// Sparkline squeezes the series into one line of block characters.
func Sparkline(s trend.Series) string {
	ticks := []rune(" ▁▂▄▆█")
	var b strings.Builder
	for _, v := range s.Values {
		if v < 0 || v >= len(ticks) {
			v = 0
		}
		b.WriteRune(ticks[v])
	}
	return b.String()
}
