package scanner

import (
	"context"
	"errors"
	"io/fs"

	"github.com/charlievieth/fastwalk"
	log "github.com/sirupsen/logrus"
)

// Walk walks opts.Root and calls visit once for every non-directory entry
// that passes the depth, symlink and filter policies. Directories are never
// passed to visit.
//
// The walk uses a single fastwalk worker, so visit is never called
// concurrently and the walk does not advance until visit returns. An error
// returned by visit, or the cancellation of ctx, stops the walk and is
// returned as is. Unreadable entries are skipped and counted in Stats.
func Walk(ctx context.Context, opts Options, visit func(Entry) error) (Stats, error) {
	var (
		stats    Stats
		visitErr error
	)

	conf := fastwalk.Config{
		Follow:     !opts.DisableSymlinks,
		NumWorkers: 1,
		MaxDepth:   opts.Depth,
	}

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// fastwalk hands a failed callback back as a read error of the
			// parent directory.
			if visitErr != nil && errors.Is(err, visitErr) {
				return err
			}
			stats.Skipped++
			log.WithError(err).WithField("path", path).Debug("skipping unreadable entry")
			return nil
		}

		if path == opts.Root && d.IsDir() {
			return nil
		}

		if !opts.Filter.Include(path) {
			if isDir(path, d, opts.DisableSymlinks) {
				log.WithField("path", path).Debug("excluding directory")
				return fastwalk.SkipDir
			}
			log.WithField("path", path).Debug("excluding file")
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if depth := fastwalk.DirEntryDepth(d); opts.Depth > 0 && depth > opts.Depth {
			return nil
		}

		entry, report, err := stat(path, d, opts.DisableSymlinks)
		if err != nil {
			stats.Skipped++
			log.WithError(err).WithField("path", path).Debug("skipping file")
			return nil
		}
		if !report {
			return nil
		}

		stats.Visited++
		if visitErr = visit(entry); visitErr != nil {
			return visitErr
		}
		return nil
	}

	err := fastwalk.Walk(&conf, opts.Root, walkFn)
	return stats, err
}

func isDir(path string, d fs.DirEntry, noFollow bool) bool {
	if d.IsDir() {
		return true
	}
	if noFollow || d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fastwalk.StatDirEntry(path, d)
	return err == nil && info.IsDir()
}

// stat builds the Entry for a non-directory. report is false for a symlink
// that must not be passed to visit: either links are disabled or the link
// points to a directory, which fastwalk traverses on its own. A broken link
// is an error.
func stat(path string, d fs.DirEntry, noFollow bool) (entry Entry, report bool, err error) {
	if d.Type()&fs.ModeSymlink == 0 {
		info, err := d.Info()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Path: path, Size: uint64(info.Size())}, true, nil
	}

	if noFollow {
		return Entry{}, false, nil
	}

	info, err := fastwalk.StatDirEntry(path, d)
	if err != nil {
		return Entry{}, false, err
	}
	if info.IsDir() {
		return Entry{}, false, nil
	}

	return Entry{Path: resolveLink(path), Size: uint64(info.Size())}, true, nil
}
