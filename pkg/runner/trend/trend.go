// Package trend prints the mood series.
package trend

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/printers"
)

type Trend struct {
	Service *app.Service
	Output  *options.OutputOptions
	Out     io.Writer
}

func (n *Trend) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get trend, no service")
	}
	s := n.Service.Trend()

	if n.Output != nil && n.Output.JSON {
		return n.Output.Print(n.Out, s)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Title("Mood Trend")
	pp.Trend(s)
	return nil
}
