// Package catalog is a CLI-local registry of round-robin files created via
// the rrdb command line, independent of the round-robin file format itself.
package catalog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	// Pure-Go SQLite driver, registered under the "sqlite" name.
	_ "modernc.org/sqlite"
)

// Entry describes one file the CLI has created.
type Entry struct {
	Path         string
	SpecTokens   []string
	Aggregation  string
	XFilesFactor uint8
	CreatedAt    time.Time
}

// Catalog is an embedded sqlite-backed registry.
type Catalog struct {
	db *sql.DB
}

// Open opens (creating if necessary) the catalog database at path.
func Open(path string) (*Catalog, error) {
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}

	c := &Catalog{db: db}
	if err := c.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("catalog: init schema: %w", err)
	}
	return c, nil
}

func (c *Catalog) initSchema() error {
	const schema = `
		CREATE TABLE IF NOT EXISTS files (
			path          TEXT PRIMARY KEY,
			spec_tokens   TEXT NOT NULL,
			aggregation   TEXT NOT NULL,
			x_files_factor INTEGER NOT NULL,
			created_at    INTEGER NOT NULL
		);
	`
	_, err := c.db.Exec(schema)
	return err
}

// Close closes the underlying database handle.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record inserts or replaces the catalog entry for a freshly created file.
func (c *Catalog) Record(e Entry) error {
	_, err := c.db.Exec(
		`INSERT INTO files (path, spec_tokens, aggregation, x_files_factor, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			spec_tokens=excluded.spec_tokens,
			aggregation=excluded.aggregation,
			x_files_factor=excluded.x_files_factor,
			created_at=excluded.created_at`,
		e.Path, strings.Join(e.SpecTokens, ","), e.Aggregation, e.XFilesFactor, e.CreatedAt.Unix(),
	)
	return err
}

// List returns every recorded entry, most recently created first.
func (c *Catalog) List() ([]Entry, error) {
	rows, err := c.db.Query(`SELECT path, spec_tokens, aggregation, x_files_factor, created_at
	                          FROM files ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var specTokens string
		var createdAt int64
		if err := rows.Scan(&e.Path, &specTokens, &e.Aggregation, &e.XFilesFactor, &createdAt); err != nil {
			return nil, err
		}
		e.SpecTokens = strings.Split(specTokens, ",")
		e.CreatedAt = time.Unix(createdAt, 0).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// DefaultPath returns the default catalog location under a home directory.
func DefaultPath(home string) string {
	return home + "/.rrdb/catalog.db"
}
