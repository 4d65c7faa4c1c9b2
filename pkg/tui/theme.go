package tui

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/moodiary/pkg/mood"
)

// Theme centralizes Lip Gloss styles for the calendar UI.
type Theme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Day      lipgloss.Style
	Past     lipgloss.Style
	Today    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style
	Status   lipgloss.Style
	Success  lipgloss.Style
	Panel    lipgloss.Style

	// Moods maps each rank to a color between the angry and very happy ends.
	Moods map[int]string
}

// Palette ends for the mood gradient.
type Palette struct {
	Low, High string
	Text      string
	Muted     string
	Accent    string
}

var (
	darkPalette  = Palette{Low: "#ff4d4d", High: "#4dd36b", Text: "#e6e6e6", Muted: "#6c6c6c", Accent: "#ff9800"}
	lightPalette = Palette{Low: "#c62828", High: "#2e7d32", Text: "#212121", Muted: "#9e9e9e", Accent: "#e65100"}
)

// Default picks the palette for the terminal background.
func Default() Theme {
	if termenv.HasDarkBackground() {
		return NewTheme(darkPalette)
	}
	return NewTheme(lightPalette)
}

// NewTheme builds a theme from p.
func NewTheme(p Palette) Theme {
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Header:   lipgloss.NewStyle().Foreground(muted),
		Day:      lipgloss.NewStyle().Foreground(text),
		Past:     lipgloss.NewStyle().Foreground(muted).Faint(true),
		Today:    lipgloss.NewStyle().Foreground(text).Bold(true),
		Cursor:   lipgloss.NewStyle().Reverse(true),
		Selected: lipgloss.NewStyle().Underline(true).Foreground(accent),
		Help:     lipgloss.NewStyle().Foreground(muted),
		Status:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.High)).Bold(true),
		Panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Moods:    MoodColors(p.Low, p.High),
	}
}

// MoodColors blends low to high across the five ranks. Unparseable ends
// fall back to black.
func MoodColors(low, high string) map[int]string {
	lo, err := colorful.Hex(low)
	if err != nil {
		lo = colorful.Color{}
	}
	hi, err := colorful.Hex(high)
	if err != nil {
		hi = colorful.Color{}
	}

	glyphs := mood.DefaultGlyphs()
	out := make(map[int]string, len(glyphs))
	for i, g := range glyphs {
		t := 0.0
		if len(glyphs) > 1 {
			t = float64(i) / float64(len(glyphs)-1)
		}
		out[g.Rank] = lo.BlendLab(hi, t).Clamped().Hex()
	}
	return out
}

// MoodStyle colors text by the rank of m.
func (t Theme) MoodStyle(m mood.Mood) lipgloss.Style {
	c, ok := t.Moods[m.Rank()]
	if !ok {
		return t.Day
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}
