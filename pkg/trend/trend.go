// Package trend turns journal entries into a plottable series.
package trend

import (
	"tableflip.dev/moodiary/pkg/entry"
	"tableflip.dev/moodiary/pkg/mood"
)

// Chart bounds of the rank axis.
const (
	MinValue = 0
	MaxValue = 6
)

// Series is the mood trend. Labels[i] and Values[i] describe the same entry.
type Series struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// Project maps entries to their date labels and mood ranks, keeping the
// order of entries. Unknown moods plot as 0.
func Project(entries []*entry.Entry) Series {
	s := Series{
		Labels: make([]string, 0, len(entries)),
		Values: make([]int, 0, len(entries)),
	}
	for _, e := range entries {
		if e == nil {
			continue
		}
		s.Labels = append(s.Labels, e.Date)
		s.Values = append(s.Values, e.Mood.Rank())
	}
	return s
}

// Len is the number of points.
func (s Series) Len() int {
	return len(s.Values)
}

// Empty reports whether there is nothing to plot.
func (s Series) Empty() bool {
	return s.Len() == 0
}

// Point returns the mood drawn for point i.
func (s Series) Point(i int) mood.Mood {
	m, _ := mood.ForRank(s.Values[i])
	return m
}
