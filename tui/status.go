package tui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/riadafridishibly/wbf/report"
)

func statusText(f *Frame, width int) string {
	state := "Scanning"
	if f.Done {
		state = "Done"
	}

	counts := fmt.Sprintf(" | Files: %s | Seen: %s | Total: %s | Elapsed: %s ",
		humanize.Comma(int64(len(f.Snapshot.Rows))),
		humanize.Comma(int64(f.Seen)),
		report.Humanize(f.Snapshot.Total),
		f.Elapsed.Round(time.Millisecond),
	)
	if f.Done && f.Skipped > 0 {
		counts = fmt.Sprintf(" | Skipped: %s%s", humanize.Comma(int64(f.Skipped)), counts)
	}

	prefix := " " + state + ": "
	return prefix + truncatePath(f.Root, width-runewidth.StringWidth(prefix)-runewidth.StringWidth(counts)) + counts
}

func footerText(waiting bool) string {
	if waiting {
		return " Scan complete. q/Esc: Quit "
	}
	return " q/Esc/Ctrl+C: Quit "
}

// truncatePath keeps the tail of p so that it fits in w cells.
func truncatePath(p string, w int) string {
	if w <= 3 {
		return ""
	}
	if pw := runewidth.StringWidth(p); pw > w {
		p = runewidth.TruncateLeft(p, pw-(w-3), "...")
	}
	return p
}
