// Package key provides CLI helpers to display the mood legend.
package key

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodiary/pkg/mood"
)

// Key prints the mood symbols with their rank and the words that select
// them on the command line.
type Key struct {
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, "")
	k.Key(ctx, out, mood.DefaultGlyphs())
	_, _ = fmt.Fprintln(out, "")
	return nil
}

// Key renders a glyph table.
func (k *Key) Key(_ context.Context, out io.Writer, glyfs []mood.Glyph) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Rank"), bold.Sprint("Meaning"), bold.Sprint("Names"))
	for _, v := range glyfs {
		names := append([]string{v.Noun}, v.Aliases...)
		tbl.AddRow(string(v.Mood), v.Rank, v.Meaning, strings.Join(names, ", "))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, tbl)
}
