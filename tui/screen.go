package tui

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"codeberg.org/tslocum/cview"
	"github.com/gdamore/tcell/v3"
)

// Screen draws the live table on the terminal. NewScreen puts the terminal
// in raw mode on the alternate screen; Close restores it and is safe to call
// more than once.
type Screen struct {
	screen tcell.Screen
	theme  Theme
	wait   bool

	table  *cview.Table
	status *cview.TextView
	footer *cview.TextView

	last    Frame
	waiting bool

	resized       atomic.Bool
	redraw        chan struct{}
	interrupt     chan struct{}
	interruptOnce sync.Once
	quit          chan struct{}
	closeOnce     sync.Once
}

// NewScreen takes over the terminal. With wait set, Finish keeps the final
// table on screen until the user quits.
func NewScreen(theme Theme, wait bool) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return newScreen(screen, theme, wait)
}

func newScreen(screen tcell.Screen, theme Theme, wait bool) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()

	s := &Screen{
		screen:    screen,
		theme:     theme,
		wait:      wait,
		table:     newTable(&theme),
		status:    newStatusLine(&theme),
		footer:    newStatusLine(&theme),
		redraw:    make(chan struct{}, 1),
		interrupt: make(chan struct{}),
		quit:      make(chan struct{}),
	}

	go s.pollEvents()

	return s, nil
}

func (s *Screen) Render(f Frame) error {
	s.last = f

	if s.resized.Swap(false) {
		s.screen.Sync()
	}

	w, h := s.screen.Size()
	s.screen.Clear()

	s.status.SetText(statusText(&f, w))
	s.status.SetRect(0, 0, w, 1)
	s.status.Draw(s.screen)

	x, y, tw, th := tableRect(w, h)
	buildTable(s.table, &s.theme, &f, th)
	s.table.SetRect(x, y, tw, th)
	s.table.Draw(s.screen)

	s.footer.SetText(footerText(s.waiting))
	s.footer.SetRect(0, h-1, w, 1)
	s.footer.Draw(s.screen)

	s.screen.Show()
	return nil
}

// Finish returns immediately unless the screen was created with wait, in
// which case it keeps redrawing the last frame on resize until the user
// quits or ctx is done.
func (s *Screen) Finish(ctx context.Context) error {
	if !s.wait {
		return nil
	}

	s.waiting = true
	if err := s.Render(s.last); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.interrupt:
			return nil
		case <-s.redraw:
			if err := s.Render(s.last); err != nil {
				return err
			}
		}
	}
}

func (s *Screen) Interrupted() <-chan struct{} {
	return s.interrupt
}

func (s *Screen) Close() error {
	s.closeOnce.Do(func() {
		close(s.quit)
		s.screen.Fini()
	})
	return nil
}
