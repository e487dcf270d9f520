package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/riadafridishibly/wbf/report"
)

// TabSpacing is the number of spaces between tabwriter columns.
const TabSpacing = 2

// Plain is the Presenter used when stdout is not a terminal. Intermediate
// frames are only remembered; Finish prints the last one as a text table.
type Plain struct {
	w    io.Writer
	last Frame
}

func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) Render(f Frame) error {
	p.last = f
	return nil
}

func (p *Plain) Finish(context.Context) error {
	return PrintTable(&p.last, p.w)
}

// Interrupted returns nil: there is no input to watch.
func (p *Plain) Interrupted() <-chan struct{} {
	return nil
}

func (p *Plain) Close() error {
	return nil
}

// PrintTable writes the frame's snapshot as aligned columns followed by a
// short summary.
func PrintTable(f *Frame, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, strings.Join(tableHeader, "\t"))
	for _, row := range f.Snapshot.Rows {
		fmt.Fprintln(w, strings.Join(row.Fields(f.Snapshot.Total), "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "\nFiles: %s, total: %s, skipped: %s, elapsed: %v\n",
		humanize.Comma(int64(len(f.Snapshot.Rows))),
		report.Humanize(f.Snapshot.Total),
		humanize.Comma(int64(f.Skipped)),
		f.Elapsed,
	)
	return err
}
