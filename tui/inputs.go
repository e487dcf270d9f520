package tui

import "github.com/gdamore/tcell/v3"

// isQuitKey reports q, Esc and Ctrl+C. tcell reports Ctrl+C as KeyCtrlC, not
// as a rune with a modifier.
func isQuitKey(event *tcell.EventKey) bool {
	switch event.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return event.Str() == "q" || event.Str() == "Q"
	}
	return false
}
