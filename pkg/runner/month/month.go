// Package month prints the calendar for the persisted month view.
package month

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/calendar"
	"tableflip.dev/moodiary/pkg/printers"
)

type Month struct {
	Service *app.Service
	// Delta moves the view relative to the persisted month.
	Delta int
	// Jump, when set, replaces the view before Delta is applied.
	Jump *calendar.View

	Out io.Writer
}

func (n *Month) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show month, no service")
	}
	if n.Jump != nil {
		n.Service.SetView(*n.Jump)
	}
	if n.Delta != 0 {
		n.Service.ShiftMonth(n.Delta)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	snap, _ := n.Service.Weather()
	pp.Heading(n.Service.Selected(), snap)
	pp.NewLine()

	m := n.Service.Month()
	pp.Month(m.Grid, m.Days)

	if e, ok := n.Service.Entry(n.Service.Selected()); ok {
		pp.Entry(e)
	} else if n.Service.CanEdit() {
		pp.Title("How are you feeling today?")
	}
	return nil
}
