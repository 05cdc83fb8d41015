// Package sqlite is the SQLite-backed Store implementation. Results are
// stored as JSON payloads keyed by posting URL; postings carry a
// processed flag driving the unprocessed queue.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hirelens/hirelens/pkg/hirelens/pipeline"
	"github.com/hirelens/hirelens/pkg/hirelens/store"
)

type sqliteStore struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database with WAL mode enabled and
// the schema initialized.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS postings (
	url TEXT PRIMARY KEY,
	title TEXT,
	company TEXT,
	location TEXT,
	source TEXT,
	description TEXT,
	fetched_at TEXT,
	processed INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS results (
	id TEXT PRIMARY KEY,
	url TEXT UNIQUE NOT NULL,
	created_at TEXT NOT NULL,
	duration_ms INTEGER NOT NULL,
	payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_postings_processed ON postings(processed);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *sqliteStore) UpsertPosting(ctx context.Context, p store.Posting) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO postings (url, title, company, location, source, description, fetched_at, processed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
	title = excluded.title,
	company = excluded.company,
	location = excluded.location,
	source = excluded.source,
	description = excluded.description,
	fetched_at = excluded.fetched_at`,
		p.URL, p.Title, p.Company, p.Location, p.Source, p.Description,
		p.FetchedAt.UTC().Format(time.RFC3339), boolToInt(p.Processed))
	if err != nil {
		return fmt.Errorf("upsert posting: %w", err)
	}
	return nil
}

func (s *sqliteStore) GetPosting(ctx context.Context, url string) (store.Posting, bool, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT url, title, company, location, source, description, fetched_at, processed
FROM postings WHERE url = ?`, url)

	p, err := scanPosting(row)
	if err == sql.ErrNoRows {
		return store.Posting{}, false, nil
	}
	if err != nil {
		return store.Posting{}, false, fmt.Errorf("get posting: %w", err)
	}
	return p, true, nil
}

func (s *sqliteStore) ListUnprocessed(ctx context.Context, limit int) ([]store.Posting, error) {
	if limit <= 0 {
		limit = -1 // sqlite treats negative LIMIT as unlimited
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT url, title, company, location, source, description, fetched_at, processed
FROM postings WHERE processed = 0 ORDER BY rowid LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list unprocessed: %w", err)
	}
	defer rows.Close()

	var out []store.Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan posting: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *sqliteStore) MarkProcessed(ctx context.Context, url string) error {
	_, err := s.db.ExecContext(ctx, `UPDATE postings SET processed = 1 WHERE url = ?`, url)
	if err != nil {
		return fmt.Errorf("mark processed: %w", err)
	}
	return nil
}

func (s *sqliteStore) UpsertResult(ctx context.Context, res pipeline.Result) error {
	payload, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO results (id, url, created_at, duration_ms, payload)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(url) DO UPDATE SET
	id = excluded.id,
	created_at = excluded.created_at,
	duration_ms = excluded.duration_ms,
	payload = excluded.payload`,
		res.ID, res.Metadata.URL, res.CreatedAt.UTC().Format(time.RFC3339),
		res.Duration.Milliseconds(), string(payload)); err != nil {
		return fmt.Errorf("upsert result: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE postings SET processed = 1 WHERE url = ?`, res.Metadata.URL); err != nil {
		return fmt.Errorf("flag posting: %w", err)
	}

	return tx.Commit()
}

func (s *sqliteStore) GetResultByURL(ctx context.Context, url string) (pipeline.Result, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM results WHERE url = ?`, url).Scan(&payload)
	if err == sql.ErrNoRows {
		return pipeline.Result{}, false, nil
	}
	if err != nil {
		return pipeline.Result{}, false, fmt.Errorf("get result: %w", err)
	}

	var res pipeline.Result
	if err := json.Unmarshal([]byte(payload), &res); err != nil {
		return pipeline.Result{}, false, fmt.Errorf("decode result: %w", err)
	}
	return res, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosting(row rowScanner) (store.Posting, error) {
	var (
		p         store.Posting
		fetchedAt string
		processed int
	)
	if err := row.Scan(&p.URL, &p.Title, &p.Company, &p.Location, &p.Source,
		&p.Description, &fetchedAt, &processed); err != nil {
		return store.Posting{}, err
	}
	if fetchedAt != "" {
		if t, err := time.Parse(time.RFC3339, fetchedAt); err == nil {
			p.FetchedAt = t
		}
	}
	p.Processed = processed != 0
	return p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
