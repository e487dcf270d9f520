package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/riadafridishibly/wbf/scanner"
	"github.com/riadafridishibly/wbf/tui"
)

// flags holds the raw command-line values before validation.
type flags struct {
	path            string
	depth           int
	disableSymlinks bool
	filter          string
	minSize         string
	outputFile      string
	theme           string
	wait            bool
	refresh         time.Duration
	logFile         string
	logLevel        string
}

// runConfig is the validated form of flags.
type runConfig struct {
	app      tui.Config
	theme    tui.Theme
	wait     bool
	logFile  string
	logLevel log.Level
}

func newCommand(version string) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "wbf --path <dir> [flags]",
		Short: "What big file? Rank files under a directory by size, live",
		Long: heredoc.Doc(`
			wbf walks a directory tree and shows every file it finds in a table
			ranked by size, updated as the scan progresses.

			Sizes use decimal prefixes (1 kB = 1000 B). Percentages are relative to
			the total of all files shown so far.

			When stdout is not a terminal the final table is printed as plain text.
			Press q, Esc or Ctrl+C to stop a scan early.
		`),
		Example: heredoc.Doc(`
			wbf --path ~/Downloads
			wbf -p /var/log --filter '\.gz$' --min-size 1MB
			wbf -p . --depth 2 --output-file sizes.csv
			wbf -p . --output-file sizes.db
		`),
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.validate()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	bindFlags(cmd.Flags(), &f)
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func bindFlags(fs *pflag.FlagSet, f *flags) {
	fs.SortFlags = false
	fs.StringVarP(&f.path, "path", "p", "", "Path to search")
	fs.IntVarP(&f.depth, "depth", "d", 0, "Depth to search (0 = unlimited)")
	fs.BoolVarP(&f.disableSymlinks, "disable-symlinks", "s", false, "Do not follow symbolic links")
	fs.StringVarP(&f.filter, "filter", "f", "", "Exclude paths matching this regex")
	fs.StringVarP(&f.minSize, "min-size", "m", "0", "Minimum file size in bytes (e.g. 4096, 1KB, 2MiB)")
	fs.StringVarP(&f.outputFile, "output-file", "o", "", "Write the final table to this file (CSV, or SQLite for .db/.sqlite)")
	fs.StringVar(&f.theme, "theme", tui.DefaultTheme, fmt.Sprintf("Table colours, one of %v", tui.ThemeNames()))
	fs.BoolVar(&f.wait, "wait", false, "Keep the final table on screen until q is pressed")
	fs.DurationVar(&f.refresh, "refresh", 0, "Minimum time between redraws (0 = after every file)")
	fs.StringVar(&f.logFile, "log-file", "", "Write diagnostics to this file")
	fs.StringVar(&f.logLevel, "log-level", "info", "Log level for --log-file")
}

// validate turns flags into a runConfig. Everything that can be rejected
// before the terminal is touched is rejected here.
func (f *flags) validate() (runConfig, error) {
	var cfg runConfig

	filter, err := scanner.NewFilter(f.filter)
	if err != nil {
		return cfg, err
	}

	minSize, err := humanize.ParseBytes(f.minSize)
	if err != nil {
		return cfg, fmt.Errorf("invalid min-size %q: %w", f.minSize, err)
	}

	if f.refresh < 0 {
		return cfg, fmt.Errorf("refresh cannot be negative: %v", f.refresh)
	}

	theme, err := tui.LookupTheme(f.theme)
	if err != nil {
		return cfg, err
	}

	level, err := log.ParseLevel(f.logLevel)
	if err != nil {
		return cfg, fmt.Errorf("invalid log-level: %w", err)
	}

	opts := scanner.Options{
		Root:            f.path,
		Depth:           f.depth,
		DisableSymlinks: f.disableSymlinks,
		Filter:          filter,
	}
	if err := opts.Validate(); err != nil {
		return cfg, err
	}

	cfg = runConfig{
		app: tui.Config{
			Scan:       opts,
			MinSize:    minSize,
			OutputFile: f.outputFile,
			Refresh:    f.refresh,
		},
		theme:    theme,
		wait:     f.wait,
		logFile:  f.logFile,
		logLevel: level,
	}
	return cfg, nil
}

func run(ctx context.Context, cfg runConfig) error {
	closeLog, err := setupLogging(cfg.logFile, cfg.logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	var presenter tui.Presenter
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		screen, err := tui.NewScreen(cfg.theme, cfg.wait)
		if err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
		presenter = screen
	} else {
		log.Info("stdout is not a terminal, printing plain table")
		presenter = tui.NewPlain(os.Stdout)
	}
	defer presenter.Close()

	_, err = tui.NewApp(cfg.app, presenter).Run(ctx)
	return err
}
