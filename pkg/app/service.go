package app

import (
	"errors"
	"log/slog"
	"time"

	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/entry"
	"tableflip.dev/moodiary/pkg/journal"
	"tableflip.dev/moodiary/pkg/logging"
	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/store"
	"tableflip.dev/moodiary/pkg/trend"
	"tableflip.dev/moodiary/pkg/weather"
)

// Service provides the journal operations shared by the CLI and the TUI.
// It is not safe for concurrent use; callers serialise their events.
type Service struct {
	persistence store.Persistence
	weather     weather.Provider
	now         func() time.Time
	log         *slog.Logger

	journal  *journal.Journal
	view     calendar.View
	selected time.Time
}

// Option customises a Service.
type Option func(*Service)

// WithWeather sets the weather provider consulted at save time.
func WithWeather(p weather.Provider) Option {
	return func(s *Service) { s.weather = p }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// New loads the journal and the calendar view from p.
func New(p store.Persistence, opts ...Option) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	s := &Service{
		persistence: p,
		weather:     weather.Pending{},
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logging.Component(s.log, "app")
	s.Reload()
	s.selected = calendar.StartOfDay(s.Today())
	return s, nil
}

// Reload re-reads both blobs, replacing in-memory state. The selected date
// is kept.
func (s *Service) Reload() {
	blob, _ := s.persistence.Load(store.KeyEntries)
	j, err := journal.Decode(blob)
	if err != nil {
		s.log.Warn("discarding unreadable mood history", "error", err)
	}
	s.journal = j

	blob, _ = s.persistence.Load(store.KeyView)
	v, err := calendar.DecodeView(blob, s.Today())
	if err != nil {
		s.log.Warn("discarding unreadable calendar view", "error", err)
	}
	s.view = v
}

// Today is the current time according to the service clock.
func (s *Service) Today() time.Time {
	return s.now()
}

// Selected returns the selected date (midnight).
func (s *Service) Selected() time.Time {
	return s.selected
}

// CanEdit reports whether the selected date is inside the edit window.
func (s *Service) CanEdit() bool {
	return calendar.IsEditable(s.selected, s.Today())
}

// Select makes date the selected date. Past dates are refused.
func (s *Service) Select(date time.Time) bool {
	if !calendar.IsEditable(date, s.Today()) {
		return false
	}
	s.selected = calendar.StartOfDay(date.In(s.Today().Location()))
	return true
}

// SelectDay selects day of the viewed month.
func (s *Service) SelectDay(day int) bool {
	g := s.view.Grid()
	if day < 1 || day > g.DaysInMonth {
		return false
	}
	return s.Select(g.Date(day, s.Today().Location()))
}

// Save writes mood and note for the selected date, with the weather known
// right now. The journal is persisted on success; persistence failures are
// logged by the store and do not undo the write.
func (s *Service) Save(m mood.Mood, note string) (*entry.Entry, error) {
	today := s.Today()
	e := entry.New(s.selected, m, note, weather.Current(s.weather))
	if err := s.journal.Upsert(e, today); err != nil {
		s.log.Debug("save rejected", "date", e.Date, "reason", err)
		return nil, err
	}
	s.persistEntries()
	return e, nil
}

// SaveOn selects date then saves.
func (s *Service) SaveOn(date time.Time, m mood.Mood, note string) (*entry.Entry, error) {
	if !s.Select(date) {
		return nil, journal.ErrNotEditable
	}
	return s.Save(m, note)
}

func (s *Service) persistEntries() {
	b, err := journal.Encode(s.journal)
	if err != nil {
		s.log.Error("encode mood history", "error", err)
		return
	}
	s.persistence.Save(store.KeyEntries, b)
}

// View returns the viewed month.
func (s *Service) View() calendar.View {
	return s.view
}

// ShiftMonth moves the viewed month by delta and persists it.
func (s *Service) ShiftMonth(delta int) calendar.View {
	return s.SetView(s.view.Shift(delta))
}

// SetView shows v and persists it.
func (s *Service) SetView(v calendar.View) calendar.View {
	s.view = v.Shift(0)
	b, err := s.view.Marshal()
	if err != nil {
		s.log.Error("encode calendar view", "error", err)
		return s.view
	}
	s.persistence.Save(store.KeyView, b)
	return s.view
}

// Month is the viewed month with per-day annotations.
type Month struct {
	Grid calendar.Grid
	Days []calendar.Day
}

// Month annotates the viewed month from the journal.
func (s *Service) Month() Month {
	return s.MonthOf(s.view)
}

// MonthOf annotates v without moving the persisted view.
func (s *Service) MonthOf(v calendar.View) Month {
	g := v.Grid()
	return Month{
		Grid: g,
		Days: calendar.Annotate(g, s.journal.MoodFor, s.Today(), s.selected),
	}
}

// MoodFor returns the mood stored on the calendar day of date.
func (s *Service) MoodFor(date time.Time) mood.Mood {
	return s.journal.MoodFor(entry.DateKey(date))
}

// Entry returns the entry stored on the calendar day of date.
func (s *Service) Entry(date time.Time) (*entry.Entry, bool) {
	return s.journal.Get(entry.DateKey(date))
}

// Entries returns every entry in storage order.
func (s *Service) Entries() []*entry.Entry {
	return s.journal.All()
}

// Trend projects the entries for charting.
func (s *Service) Trend() trend.Series {
	return trend.Project(s.journal.All())
}

// Weather returns the snapshot a save would record now, and whether it is
// resolved.
func (s *Service) Weather() (weather.Snapshot, bool) {
	if s.weather == nil {
		return weather.Snapshot{}, false
	}
	return s.weather.Snapshot()
}
