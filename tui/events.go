package tui

import "github.com/gdamore/tcell/v3"

// pollEvents runs until Close. It never touches the drawing surface; resizes
// are handed to the scan loop through s.resized and s.redraw.
func (s *Screen) pollEvents() {
	events := s.screen.EventQ()
	for {
		select {
		case <-s.quit:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.resized.Store(true)
				select {
				case s.redraw <- struct{}{}:
				default:
				}
			case *tcell.EventKey:
				if isQuitKey(ev) {
					s.interruptOnce.Do(func() { close(s.interrupt) })
				}
			}
		}
	}
}
