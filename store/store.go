package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Record is one exported row.
type Record struct {
	Path       string
	Size       uint64
	HumanSize  string
	Percentage string
}

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS files (
    rank INTEGER NOT NULL,
    path TEXT PRIMARY KEY,
    size INTEGER NOT NULL,
    human_size TEXT NOT NULL,
    percentage TEXT NOT NULL
);
`

var pragmas = []string{
	`PRAGMA synchronous=NORMAL;`,
	`PRAGMA busy_timeout=5000;`,
	`PRAGMA temp_store=MEMORY;`,
}

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Replace drops any previous export and stores records in order; rank is the
// position in records, starting at 1.
func (s *Store) Replace(records []*Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM files"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
        INSERT INTO files (rank, path, size, human_size, percentage)
        VALUES (?, ?, ?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            rank = excluded.rank,
            size = excluded.size,
            human_size = excluded.human_size,
            percentage = excluded.percentage
    `)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(i+1, r.Path, int64(r.Size), r.HumanSize, r.Percentage); err != nil {
			return fmt.Errorf("inserting %q: %w", r.Path, err)
		}
	}

	return tx.Commit()
}

// All returns the stored records ordered by rank.
func (s *Store) All() ([]*Record, error) {
	rows, err := s.db.Query("SELECT path, size, human_size, percentage FROM files ORDER BY rank")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var r Record
		var size int64
		if err := rows.Scan(&r.Path, &size, &r.HumanSize, &r.Percentage); err != nil {
			return nil, err
		}
		r.Size = uint64(size)
		records = append(records, &r)
	}
	return records, rows.Err()
}
