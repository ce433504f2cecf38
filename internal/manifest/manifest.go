// Package manifest records build runs in a SQLite database. The manifest is
// derived bookkeeping for the preview server and MCP tools; the pipeline
// itself never consults it.
package manifest

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/starford/dagaz/internal/models"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS builds (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	started_at  DATETIME NOT NULL,
	duration_ms INTEGER NOT NULL DEFAULT 0,
	documents   INTEGER NOT NULL DEFAULT 0,
	assets      INTEGER NOT NULL DEFAULT 0,
	status      TEXT NOT NULL DEFAULT 'ok'
);

CREATE TABLE IF NOT EXISTS documents (
	build_id INTEGER NOT NULL REFERENCES builds(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	slug     TEXT NOT NULL,
	title    TEXT NOT NULL DEFAULT '',
	date     DATETIME,
	checksum TEXT NOT NULL DEFAULT '',
	UNIQUE(build_id, slug)
);

CREATE INDEX IF NOT EXISTS idx_documents_build ON documents(build_id);
`

// Build statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Store wraps a sql.DB with manifest operations.
type Store struct {
	conn *sql.DB
}

// BuildRow is one recorded run.
type BuildRow struct {
	ID        int64         `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Documents int           `json:"documents"`
	Assets    int           `json:"assets"`
	Status    string        `json:"status"`
}

// DocumentRow is one output page of a recorded run.
type DocumentRow struct {
	Slug     string     `json:"slug"`
	Title    string     `json:"title"`
	Date     *time.Time `json:"date,omitempty"`
	Checksum string     `json:"checksum"`
}

// Open opens (or creates) the SQLite database and applies the schema.
func Open(dsn string) (*Store, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("manifest: open: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("manifest: apply schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.conn.Close()
}

// RecordBuild inserts a build row plus one document row per output page,
// all within a transaction. Returns the new build ID.
func (s *Store) RecordBuild(res *models.BuildResult, status string) (int64, error) {
	tx, err := s.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("manifest: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	out, err := tx.Exec(`
		INSERT INTO builds (started_at, duration_ms, documents, assets, status)
		VALUES (?, ?, ?, ?, ?)
	`, res.StartedAt, res.Duration.Milliseconds(), len(res.Documents), len(res.Assets), status)
	if err != nil {
		return 0, fmt.Errorf("manifest: insert build: %w", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("manifest: build id: %w", err)
	}

	if len(res.Documents) > 0 {
		stmt, err := tx.Prepare(`
			INSERT INTO documents (build_id, position, slug, title, date, checksum)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return 0, fmt.Errorf("manifest: prepare document insert: %w", err)
		}
		defer stmt.Close()
		for i, d := range res.Documents {
			if _, err := stmt.Exec(id, i, d.Slug, d.Title, d.Date, d.Checksum); err != nil {
				return 0, fmt.Errorf("manifest: insert document %s: %w", d.Slug, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("manifest: commit: %w", err)
	}
	return id, nil
}

// RecentBuilds returns up to limit builds, newest first.
func (s *Store) RecentBuilds(limit int) ([]BuildRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.conn.Query(`
		SELECT id, started_at, duration_ms, documents, assets, status
		FROM builds ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("manifest: list builds: %w", err)
	}
	defer rows.Close()

	var out []BuildRow
	for rows.Next() {
		var b BuildRow
		var ms int64
		if err := rows.Scan(&b.ID, &b.StartedAt, &ms, &b.Documents, &b.Assets, &b.Status); err != nil {
			return nil, fmt.Errorf("manifest: scan build: %w", err)
		}
		b.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, b)
	}
	return out, rows.Err()
}

// LatestDocuments returns the document rows of the most recent successful
// build, in build order. An empty manifest yields an empty slice.
func (s *Store) LatestDocuments() ([]DocumentRow, error) {
	var buildID int64
	err := s.conn.QueryRow(`
		SELECT id FROM builds WHERE status = ? ORDER BY id DESC LIMIT 1
	`, StatusOK).Scan(&buildID)
	if err == sql.ErrNoRows {
		return []DocumentRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("manifest: latest build: %w", err)
	}

	rows, err := s.conn.Query(`
		SELECT slug, title, date, checksum
		FROM documents WHERE build_id = ? ORDER BY position
	`, buildID)
	if err != nil {
		return nil, fmt.Errorf("manifest: list documents: %w", err)
	}
	defer rows.Close()

	out := []DocumentRow{}
	for rows.Next() {
		var d DocumentRow
		var date sql.NullTime
		if err := rows.Scan(&d.Slug, &d.Title, &date, &d.Checksum); err != nil {
			return nil, fmt.Errorf("manifest: scan document: %w", err)
		}
		if date.Valid {
			t := date.Time
			d.Date = &t
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
