package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var ErrNotDirectory = errors.New("not a directory")

// Options configures a walk. It is not modified once the walk has started.
type Options struct {
	// Root is the directory to scan.
	Root string
	// Depth is the maximum depth relative to Root (0 = unlimited).
	// Files directly inside Root are at depth 1.
	Depth int
	// DisableSymlinks stops the walker from following or reporting symlinks.
	DisableSymlinks bool
	// Filter excludes matching paths; nil includes everything.
	Filter *Filter
}

// Validate checks that Root is an accessible directory and makes it absolute.
func (o *Options) Validate() error {
	if o.Depth < 0 {
		return fmt.Errorf("depth cannot be negative: %d", o.Depth)
	}

	root, err := filepath.Abs(filepath.Clean(o.Root))
	if err != nil {
		return fmt.Errorf("resolving absolute path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("accessing path %q: %w", o.Root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q: %w", o.Root, ErrNotDirectory)
	}

	dir, err := os.Open(root)
	if err != nil {
		return fmt.Errorf("opening path %q: %w", o.Root, err)
	}
	dir.Close()

	o.Root = root
	return nil
}
