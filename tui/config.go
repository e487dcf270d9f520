package tui

import (
	"time"

	"github.com/riadafridishibly/wbf/scanner"
)

type Config struct {
	Scan       scanner.Options
	MinSize    uint64
	OutputFile string
	// Refresh throttles redraws; zero redraws after every entry.
	Refresh time.Duration
}
