package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/riadafridishibly/wbf/report"
	"github.com/riadafridishibly/wbf/scanner"
)

// App is the scan loop: every entry from the walker goes through the
// aggregator and is followed by a redraw.
type App struct {
	cfg       Config
	presenter Presenter
	agg       *report.Aggregator

	stats     scanner.Stats
	startTime time.Time
	lastDraw  time.Time
}

func NewApp(cfg Config, presenter Presenter) *App {
	return &App{
		cfg:       cfg,
		presenter: presenter,
		agg:       report.NewAggregator(cfg.MinSize),
	}
}

// Run scans, keeps the presenter up to date and exports the final snapshot
// if an output file is configured. A quit request from the presenter or a
// cancelled ctx ends the scan early without an error; what was gathered so
// far is still shown and exported.
func (a *App) Run(ctx context.Context) (report.Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		select {
		case <-a.presenter.Interrupted():
			log.Info("scan interrupted by user")
			cancel()
		case <-ctx.Done():
		}
	}()

	a.startTime = time.Now()
	log.WithField("root", a.cfg.Scan.Root).Info("scan started")

	stats, err := scanner.Walk(ctx, a.cfg.Scan, a.step)
	a.stats = stats
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return report.Snapshot{}, fmt.Errorf("scanning %q: %w", a.cfg.Scan.Root, err)
	}

	snap := a.agg.Snapshot()
	log.WithFields(log.Fields{
		"files":   len(snap.Rows),
		"seen":    a.agg.Seen(),
		"skipped": stats.Skipped,
		"total":   snap.Total,
		"elapsed": time.Since(a.startTime),
	}).Info("scan finished")

	if err := a.presenter.Render(a.frame(snap, true)); err != nil {
		return snap, fmt.Errorf("rendering: %w", err)
	}

	if a.cfg.OutputFile != "" {
		if err := report.Export(a.cfg.OutputFile, snap); err != nil {
			return snap, fmt.Errorf("exporting to %q: %w", a.cfg.OutputFile, err)
		}
		log.WithField("file", a.cfg.OutputFile).Info("export written")
	}

	if err := a.presenter.Finish(ctx); err != nil {
		return snap, err
	}

	return snap, nil
}

func (a *App) step(e scanner.Entry) error {
	if !a.agg.Accept(e) {
		log.WithField("path", e.Path).Debug("below minimum size")
	}

	if a.cfg.Refresh > 0 && time.Since(a.lastDraw) < a.cfg.Refresh {
		return nil
	}
	a.lastDraw = time.Now()

	return a.presenter.Render(a.frame(a.agg.Snapshot(), false))
}

func (a *App) frame(snap report.Snapshot, done bool) Frame {
	return Frame{
		Root:     a.cfg.Scan.Root,
		Snapshot: snap,
		Seen:     a.agg.Seen(),
		Skipped:  a.stats.Skipped,
		Elapsed:  time.Since(a.startTime),
		Done:     done,
	}
}
