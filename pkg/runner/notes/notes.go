// Package notes prints every journal entry.
package notes

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/moodiary/pkg/app"
	"tableflip.dev/moodiary/pkg/commands/options"
	"tableflip.dev/moodiary/pkg/entry"
	"tableflip.dev/moodiary/pkg/printers"
)

type Notes struct {
	Service *app.Service
	Output  *options.OutputOptions
	Width   int
	Out     io.Writer
}

func (n *Notes) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list notes, no service")
	}
	all := n.Service.Entries()

	if n.Output != nil && n.Output.JSON {
		if all == nil {
			all = []*entry.Entry{}
		}
		return n.Output.Print(n.Out, all)
	}

	pp := printers.PrettyPrint{Out: n.Out, Width: n.Width}
	pp.TitleWithCount("All Notes", len(all))
	pp.Notes(all...)
	return nil
}
