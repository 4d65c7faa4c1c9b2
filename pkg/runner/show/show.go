// Package show prints the entry of a single day.
package show

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/entry"
	"tableflip.dev/moodiary/pkg/printers"
)

// ErrNoEntry is returned when the day has no entry.
var ErrNoEntry = errors.New("no entry")

type Show struct {
	Service *app.Service
	// On defaults to today.
	On     *time.Time
	Output *options.OutputOptions
	Out    io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	on := n.Service.Today()
	if n.On != nil {
		on = *n.On
	}

	e, ok := n.Service.Entry(on)
	if !ok {
		return fmt.Errorf("%w for %s", ErrNoEntry, entry.DateKey(on))
	}

	if n.Output != nil && n.Output.JSON {
		return n.Output.Print(n.Out, e)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Title(printers.LongDate(on))
	pp.Entry(e)
	if calendar.IsEditable(on, n.Service.Today()) {
		f := color.New(color.Faint)
		_, _ = f.Fprintln(outOr(n.Out), "still editable, use `moodiary log --on", entry.DateKey(on)+"`")
	}
	return nil
}

func outOr(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}
