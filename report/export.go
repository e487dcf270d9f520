package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/riadafridishibly/wbf/store"
)

// Export writes snap to path. Files ending in .db, .sqlite or .sqlite3 are
// written as a SQLite database, anything else as CSV without a header row.
func Export(path string, snap Snapshot) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return exportSQLite(path, snap)
	default:
		return exportCSV(path, snap)
	}
}

// WriteCSV writes one record per row: path, human-readable size and share
// of the snapshot total.
func WriteCSV(w io.Writer, snap Snapshot) error {
	cw := csv.NewWriter(w)
	for _, row := range snap.Rows {
		if err := cw.Write(row.Fields(snap.Total)); err != nil {
			return fmt.Errorf("writing record for %q: %w", row.Path, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

func exportCSV(path string, snap Snapshot) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	return WriteCSV(f, snap)
}

func exportSQLite(path string, snap Snapshot) (err error) {
	records := make([]*store.Record, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		records = append(records, &store.Record{
			Path:       row.Path,
			Size:       row.Size,
			HumanSize:  row.HumanSize(),
			Percentage: Percentage(row.Size, snap.Total),
		})
	}

	s, err := store.Open(path)
	if err != nil {
		return fmt.Errorf("opening output database: %w", err)
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output database: %w", cerr)
		}
	}()

	if err := s.Replace(records); err != nil {
		return fmt.Errorf("writing output database: %w", err)
	}
	return nil
}
