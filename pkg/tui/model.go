// Package tui is the interactive calendar: pick a day, a mood and a note,
// then save.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/logging"
	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/printers"
	"tableflip.dev/moodiary/pkg/store"
)

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeHelp
)

const (
	savedMessage = "Mood saved successfully!"
	flashFor     = 3 * time.Second
	helpLine     = "←/→/↑/↓ move, enter select, [/] month, 1-5 mood, i note, s save, t trend, ? help, q quit"
)

type storeChangedMsg store.Event
type watchClosedMsg struct{}
type clearStatusMsg struct{ seq int }

// Model contains UI state. The draft mood and note are not tied to a date;
// they are cleared after a successful save.
type Model struct {
	svc    *app.Service
	theme  Theme
	log    *slog.Logger
	events <-chan store.Event

	mode   mode
	cursor int

	draft mood.Mood
	input textinput.Model

	showTrend bool
	status    string
	flash     bool
	flashSeq  int

	termWidth  int
	termHeight int
}

// Option customises a Model.
type Option func(*Model)

// WithEvents reloads the service whenever the store reports a change.
func WithEvents(ch <-chan store.Event) Option {
	return func(m *Model) { m.events = ch }
}

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(m *Model) { m.log = log }
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Write about your day..."
	ti.CharLimit = 512
	ti.Prompt = ""

	m := Model{
		svc:    svc,
		input:  ti,
		status: "NORMAL: pick a day, 1-5 for a mood, i to write a note, s to save",
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.theme.Moods == nil {
		m.theme = Default()
	}
	m.log = logging.Component(m.log, "tui")
	if svc != nil {
		m.cursor = svc.Selected().Day()
		if !svc.View().Contains(svc.Selected()) {
			m.cursor = 1
		}
	}
	return m
}

// Init starts watching the store.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	if m.events == nil {
		return nil
	}
	ch := m.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchClosedMsg{}
		}
		return storeChangedMsg(ev)
	}
}

func (m Model) flashStatus(msg string) (Model, tea.Cmd) {
	m.status = msg
	m.flash = true
	m.flashSeq++
	seq := m.flashSeq
	return m, tea.Tick(flashFor, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case storeChangedMsg:
		m.log.Debug("store changed, reloading", "key", msg.Key)
		m.svc.Reload()
		m.clampCursor()
		cmds = append(cmds, m.waitForChange())
	case watchClosedMsg:
		m.events = nil
	case clearStatusMsg:
		if msg.seq == m.flashSeq {
			m.flash = false
			m.status = ""
		}
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeInsert:
			switch msg.String() {
			case "enter", "esc":
				m.mode = modeNormal
				m.input.Blur()
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		default:
			var cmd tea.Cmd
			m, cmd = m.handleNormal(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleNormal(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.mode = modeHelp
	case "left", "h":
		m.moveCursor(-1)
	case "right", "l":
		m.moveCursor(1)
	case "up", "k":
		m.moveRow(-1)
	case "down", "j":
		m.moveRow(1)
	case "[":
		m.changeMonth(-1)
	case "]":
		m.changeMonth(1)
	case "enter", "space", " ":
		if !m.svc.SelectDay(m.cursor) {
			m.status = "That day has passed"
		} else {
			m.status = ""
		}
	case "1", "2", "3", "4", "5":
		if !m.svc.CanEdit() {
			m.status = "Pick today or a later day first"
			break
		}
		r := int(key[0] - '0')
		m.draft, _ = mood.ForRank(r)
	case "i":
		if !m.svc.CanEdit() {
			m.status = "Pick today or a later day first"
			break
		}
		m.mode = modeInsert
		return m, m.input.Focus()
	case "t":
		m.showTrend = !m.showTrend
	case "s":
		return m.save()
	}
	return m, nil
}

func (m Model) save() (Model, tea.Cmd) {
	note := strings.TrimSpace(m.input.Value())
	if _, err := m.svc.Save(m.draft, note); err != nil {
		// Nothing is shown for a refused save.
		m.log.Debug("save refused", "reason", err)
		return m, nil
	}
	m.draft = mood.None
	m.input.Reset()
	return m.flashStatus(savedMessage)
}

func (m *Model) moveCursor(delta int) {
	g := m.svc.View().Grid()
	next := m.cursor + delta
	switch {
	case next < 1:
		m.changeMonth(-1)
		m.cursor = m.svc.View().Grid().DaysInMonth + next
	case next > g.DaysInMonth:
		m.changeMonth(1)
		m.cursor = next - g.DaysInMonth
	default:
		m.cursor = next
	}
	m.clampCursor()
}

// moveRow keeps the weekday column, crossing into the adjacent month when
// the row runs out.
func (m *Model) moveRow(delta int) {
	g := m.svc.View().Grid()
	row, col, ok := g.Cell(m.cursor)
	if !ok {
		m.moveCursor(7 * delta)
		return
	}
	if day, ok := g.DayAt(row+delta, col); ok {
		m.cursor = day
		return
	}
	m.moveCursor(7 * delta)
}

func (m *Model) changeMonth(delta int) {
	m.svc.ShiftMonth(delta)
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := m.svc.View().Grid().DaysInMonth
	if m.cursor > n {
		m.cursor = n
	}
	if m.cursor < 1 {
		m.cursor = 1
	}
}

// View renders the heading, the calendar and the form.
func (m Model) View() string {
	var b strings.Builder

	snap, _ := m.svc.Weather()
	b.WriteString(m.theme.Title.Render("Moodiary"))
	b.WriteString("\n")
	b.WriteString(printers.LongDate(m.svc.Selected()))
	b.WriteString("\n🌡️ " + printers.TemperatureText(snap))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Panel.Render(m.renderMonth()))
	b.WriteString("\n\n")
	b.WriteString(m.renderForm())

	if m.showTrend {
		b.WriteString("\n\n")
		b.WriteString(m.renderTrend())
	}
	if m.mode == modeHelp {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Italic(true).Render("Keys: " + helpLine))
	}

	status := m.theme.Status.Render(m.status)
	if m.flash {
		status = m.theme.Success.Render(m.status)
	}
	b.WriteString("\n\n")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(helpLine))
	return b.String()
}

func (m Model) renderMonth() string {
	month := m.svc.Month()
	lines := []string{
		m.theme.Title.Render(month.Grid.Title()),
		m.theme.Header.Render("Su   Mo   Tu   We   Th   Fr   Sa"),
	}
	for _, week := range month.Grid.Weeks() {
		cells := make([]string, 0, len(week))
		for _, day := range week {
			if day == 0 {
				cells = append(cells, "    ")
				continue
			}
			cells = append(cells, m.renderDay(month.Days[day-1]))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderDay(d calendar.Day) string {
	style := m.theme.Day
	switch {
	case d.Today:
		style = m.theme.Today
	case d.Past:
		style = m.theme.Past
	}
	if d.Selected {
		style = m.theme.Selected.Inherit(style)
	}
	if d.Day == m.cursor {
		style = m.theme.Cursor.Inherit(style)
	}
	sym := "  "
	if d.Mood != mood.None {
		sym = m.theme.MoodStyle(d.Mood).Render(string(d.Mood))
	}
	return style.Render(fmt.Sprintf("%2d", d.Day)) + sym
}

func (m Model) renderForm() string {
	if !m.svc.CanEdit() {
		return m.theme.Past.Render("The selected day can no longer be edited.")
	}
	picks := make([]string, 0, 5)
	for _, g := range mood.DefaultGlyphs() {
		label := fmt.Sprintf("%d %s", g.Rank, g.Mood)
		if g.Mood == m.draft {
			label = m.theme.MoodStyle(g.Mood).Reverse(true).Render(label)
		}
		picks = append(picks, label)
	}
	prompt := "Note: "
	if m.mode == modeInsert {
		prompt = m.theme.Selected.Render("Note: ")
	}
	return "How are you feeling today?\n" + strings.Join(picks, "  ") + "\n" + prompt + m.input.View()
}

func (m Model) renderTrend() string {
	s := m.svc.Trend()
	if s.Empty() {
		return m.theme.Status.Render(printers.NoTrend)
	}
	lines := []string{m.theme.Title.Render("Mood Trend")}
	for i, v := range s.Values {
		bar := m.theme.MoodStyle(s.Point(i)).Render(printers.Bar(v))
		lines = append(lines, fmt.Sprintf("%-10s %s %s", s.Labels[i], bar, mood.Label(v)))
	}
	return strings.Join(lines, "\n")
}

// Run launches the Bubble Tea program.
func Run(svc *app.Service, opts ...Option) error {
	p := tea.NewProgram(New(svc, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
