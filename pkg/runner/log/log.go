// Package log records the mood for a day from the command line.
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/journal"
	"tableflip.dev/moodiary/pkg/logging"
	"tableflip.dev/moodiary/pkg/mood"
	"tableflip.dev/moodiary/pkg/printers"
)

// SavedMessage is printed after a successful save.
const SavedMessage = "Mood saved successfully!"

// Waiter is satisfied by the asynchronous weather lookup.
type Waiter interface {
	Wait(ctx context.Context)
}

type Log struct {
	Service *app.Service
	Mood    mood.Mood
	Note    string
	// On defaults to the selected date, which is today.
	On *time.Time

	Weather     Waiter
	WeatherWait time.Duration

	Log *slog.Logger
	Out io.Writer
}

// Do saves the entry and prints the month it landed in. A save the journal refuses is logged and dropped
// without output or error.
func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no service")
	}
	log := logging.Component(n.Log, "log")

	if n.Weather != nil && n.WeatherWait > 0 {
		wctx, cancel := context.WithTimeout(ctx, n.WeatherWait)
		n.Weather.Wait(wctx)
		cancel()
	}

	var err error
	if n.On != nil {
		_, err = n.Service.SaveOn(*n.On, n.Mood, n.Note)
	} else {
		_, err = n.Service.Save(n.Mood, n.Note)
	}
	if rejected(err) {
		log.Warn("entry not saved", "reason", err)
		return nil
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Success(SavedMessage)
	pp.NewLine()
	m := n.Service.MonthOf(calendar.ViewOf(n.Service.Selected()))
	pp.Month(m.Grid, m.Days)
	return nil
}

func rejected(err error) bool {
	for _, target := range []error{
		journal.ErrNilEntry,
		journal.ErrMissingMood,
		journal.ErrMissingNote,
		journal.ErrInvalidDate,
		journal.ErrNotEditable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
