// Package mood defines the fixed mood vocabulary and its ordinal ranks.
package mood

import (
	"fmt"
	"strconv"
	"strings"
)

// Mood is the symbol recorded with an entry.
type Mood string

const (
	Angry     Mood = "😡"
	Sad       Mood = "😞"
	Neutral   Mood = "😐"
	Happy     Mood = "😊"
	VeryHappy Mood = "😄"
	None      Mood = ""
)

// Glyph describes one mood of the palette.
type Glyph struct {
	Mood    Mood
	Rank    int
	Noun    string
	Meaning string
	Aliases []string
}

func (g Glyph) String() string {
	return string(g.Mood)
}

// DefaultGlyphs returns the palette in rank order.
func DefaultGlyphs() []Glyph {
	return []Glyph{{
		Mood:    Angry,
		Rank:    1,
		Noun:    "angry",
		Meaning: "Angry",
		Aliases: []string{"mad", "furious"},
	}, {
		Mood:    Sad,
		Rank:    2,
		Noun:    "sad",
		Meaning: "Sad",
		Aliases: []string{"down", "blue"},
	}, {
		Mood:    Neutral,
		Rank:    3,
		Noun:    "neutral",
		Meaning: "Neutral",
		Aliases: []string{"meh", "ok"},
	}, {
		Mood:    Happy,
		Rank:    4,
		Noun:    "happy",
		Meaning: "Happy",
		Aliases: []string{"good"},
	}, {
		Mood:    VeryHappy,
		Rank:    5,
		Noun:    "very-happy",
		Meaning: "Very Happy",
		Aliases: []string{"great", "veryhappy", "very_happy"},
	}}
}

// Glyph returns the palette entry for m.
func (m Mood) Glyph() (Glyph, bool) {
	for _, g := range DefaultGlyphs() {
		if g.Mood == m {
			return g, true
		}
	}
	return Glyph{}, false
}

// Rank maps m to 1..5, or 0 when m is not part of the vocabulary.
func (m Mood) Rank() int {
	if g, ok := m.Glyph(); ok {
		return g.Rank
	}
	return 0
}

// Known reports whether m belongs to the palette.
func (m Mood) Known() bool {
	return m.Rank() != 0
}

func (m Mood) String() string {
	return string(m)
}

// ForRank returns the mood with the given rank.
func ForRank(rank int) (Mood, bool) {
	for _, g := range DefaultGlyphs() {
		if g.Rank == rank {
			return g.Mood, true
		}
	}
	return None, false
}

// ForAlias resolves a symbol, noun, alias or rank digit to a Mood.
func ForAlias(s string) (Mood, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return None, fmt.Errorf("mood: empty mood")
	}
	if rank, err := strconv.Atoi(needle); err == nil {
		if m, ok := ForRank(rank); ok {
			return m, nil
		}
		return None, fmt.Errorf("mood: rank %d out of range 1-5", rank)
	}
	for _, g := range DefaultGlyphs() {
		if needle == string(g.Mood) || needle == g.Noun {
			return g.Mood, nil
		}
		for _, a := range g.Aliases {
			if needle == a {
				return g.Mood, nil
			}
		}
	}
	return None, fmt.Errorf("mood: unknown mood %q", s)
}

// Nouns lists the canonical nouns, used for shell completion.
func Nouns() []string {
	glyphs := DefaultGlyphs()
	nouns := make([]string, 0, len(glyphs))
	for _, g := range glyphs {
		nouns = append(nouns, g.Noun)
	}
	return nouns
}

// Label renders a rank as a chart axis label.
func Label(rank int) string {
	m, ok := ForRank(rank)
	if !ok {
		return ""
	}
	g, _ := m.Glyph()
	return fmt.Sprintf("%s %s", g.Mood, g.Meaning)
}

// Describe renders a rank as a data point label.
func Describe(rank int) string {
	m, ok := ForRank(rank)
	if !ok {
		return "No Mood"
	}
	g, _ := m.Glyph()
	return fmt.Sprintf("%s %s", g.Meaning, g.Mood)
}
