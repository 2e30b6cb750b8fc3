// Package cache stores per-compilation type summaries in SQLite so runs can
// be compared or inspected after the fact.
package cache

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS summaries (
	compilation TEXT NOT NULL,
	module      TEXT NOT NULL,
	name        TEXT NOT NULL,
	type        TEXT NOT NULL,
	PRIMARY KEY (compilation, module, name)
);
CREATE TABLE IF NOT EXISTS runs (
	compilation TEXT PRIMARY KEY,
	modules     INTEGER NOT NULL,
	diagnostics INTEGER NOT NULL
);
`

// Entry is the rendered type of one top-level declaration.
type Entry struct {
	Module string
	Name   string
	Type   string
}

// Run is the outcome of one compilation.
type Run struct {
	Compilation uuid.UUID
	Modules     int
	Diagnostics int
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. ":memory:" gives a
// private in-memory store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache %s: %w", path, err)
	}
	// One connection keeps an in-memory database alive and serializes writes.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing cache %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSummary replaces the entries recorded for module in a compilation.
func (s *Store) SaveSummary(compilation uuid.UUID, module string, entries []Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM summaries WHERE compilation = ? AND module = ?`, compilation.String(), module); err != nil {
		return fmt.Errorf("clearing summary of %s: %w", module, err)
	}
	stmt, err := tx.Prepare(`INSERT INTO summaries (compilation, module, name, type) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.Exec(compilation.String(), module, e.Name, e.Type); err != nil {
			return fmt.Errorf("saving %s.%s: %w", module, e.Name, err)
		}
	}
	return tx.Commit()
}

// Summaries returns every entry of a compilation ordered by module and name.
func (s *Store) Summaries(compilation uuid.UUID) ([]Entry, error) {
	rows, err := s.db.Query(`SELECT module, name, type FROM summaries WHERE compilation = ? ORDER BY module, name`, compilation.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Module, &e.Name, &e.Type); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// SaveRun records the totals of a compilation.
func (s *Store) SaveRun(run Run) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO runs (compilation, modules, diagnostics) VALUES (?, ?, ?)`,
		run.Compilation.String(), run.Modules, run.Diagnostics)
	return err
}

// Runs returns every recorded compilation.
func (s *Store) Runs() ([]Run, error) {
	rows, err := s.db.Query(`SELECT compilation, modules, diagnostics FROM runs ORDER BY compilation`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var (
			id  string
			run Run
		)
		if err := rows.Scan(&id, &run.Modules, &run.Diagnostics); err != nil {
			return nil, err
		}
		if run.Compilation, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("run %q: %w", id, err)
		}
		out = append(out, run)
	}
	return out, rows.Err()
}
