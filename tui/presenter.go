package tui

import (
	"context"
	"time"

	"github.com/riadafridishibly/wbf/report"
)

// Frame is everything a Presenter needs to draw one update.
type Frame struct {
	Root     string
	Snapshot report.Snapshot
	Seen     int
	Skipped  int
	Elapsed  time.Duration
	Done     bool
}

// Presenter displays scan progress. Render is called synchronously from the
// scan loop; the walk does not advance until it returns.
type Presenter interface {
	Render(Frame) error
	// Finish is called once after the last frame.
	Finish(ctx context.Context) error
	// Interrupted is closed when the user asks to quit.
	Interrupted() <-chan struct{}
	Close() error
}
