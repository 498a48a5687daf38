// Package store persists shortest-path runs in SQLite so that results can be
// listed and compared later without recomputation.
//
// A run is one dijkstra.Result plus a label and the name of the network it
// was computed on. Unreachable locations are stored with a NULL distance and
// an empty path, and come back as dijkstra.Unreachable.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/cityroute/core"
	"github.com/katalvlaran/cityroute/dijkstra"

	_ "modernc.org/sqlite"
)

// timeLayout is fixed-width so that created_at sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound is returned by LoadResult for an unknown run ID.
var ErrRunNotFound = fmt.Errorf("store: run %w", core.ErrNotFound)

// Run describes one stored computation.
type Run struct {
	ID        int64
	Label     string
	Network   string
	Source    string
	CreatedAt time.Time
	Locations int
	Reachable int
}

// Store is a SQLite-backed run history. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures Open.
type Option func(*Store)

// WithClock replaces time.Now for run timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open opens (creating if needed) the database at path and its schema.
func Open(path string, opts ...Option) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time; sqlite serialises anyway
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  label TEXT NOT NULL,
  network TEXT NOT NULL,
  source TEXT NOT NULL,
  created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS distances (
  run_id INTEGER NOT NULL REFERENCES runs(id),
  location TEXT NOT NULL,
  distance REAL,
  path TEXT NOT NULL,
  PRIMARY KEY (run_id, location)
);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create run tables: %w", err)
	}

	return nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveResult stores res and returns the new run ID.
func (s *Store) SaveResult(ctx context.Context, label, network string, res *dijkstra.Result) (int64, error) {
	if res == nil {
		return 0, fmt.Errorf("%w: store: nil result", core.ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out, err := tx.ExecContext(ctx,
		`INSERT INTO runs (label, network, source, created_at) VALUES (?, ?, ?, ?);`,
		label, network, res.Source(), s.now().UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO distances (run_id, location, distance, path) VALUES (?, ?, ?, ?);`)
	if err != nil {
		return 0, fmt.Errorf("prepare distances: %w", err)
	}
	defer stmt.Close()
	for _, loc := range res.Locations() {
		d, _ := res.Distance(loc)
		var dist sql.NullFloat64
		if !dijkstra.IsUnreachable(d) {
			dist = sql.NullFloat64{Float64: d, Valid: true}
		}
		path, err := json.Marshal(res.PathTo(loc))
		if err != nil {
			return 0, fmt.Errorf("encode path to %q: %w", loc, err)
		}
		if _, err := stmt.ExecContext(ctx, id, loc, dist, string(path)); err != nil {
			return 0, fmt.Errorf("insert distance %q: %w", loc, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit run: %w", err)
	}

	return id, nil
}

// LoadResult rebuilds the Result stored under id.
// The settle order is not persisted.
func (s *Store) LoadResult(ctx context.Context, id int64) (*Run, *dijkstra.Result, error) {
	run, err := s.run(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT location, distance, path FROM distances WHERE run_id = ? ORDER BY location;`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("load distances: %w", err)
	}
	defer rows.Close()

	dist := make(map[string]float64)
	paths := make(map[string][]string)
	for rows.Next() {
		var (
			loc  string
			d    sql.NullFloat64
			path string
		)
		if err := rows.Scan(&loc, &d, &path); err != nil {
			return nil, nil, fmt.Errorf("scan distance: %w", err)
		}
		dist[loc] = dijkstra.Unreachable
		if d.Valid {
			dist[loc] = d.Float64
		}
		var p []string
		if err := json.Unmarshal([]byte(path), &p); err != nil {
			return nil, nil, fmt.Errorf("decode path to %q: %w", loc, err)
		}
		paths[loc] = p
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate distances: %w", err)
	}

	res, err := dijkstra.NewResult(run.Source, dist, paths)
	if err != nil {
		return nil, nil, fmt.Errorf("run %d: %w", id, err)
	}

	return run, res, nil
}

// ListRuns returns the most recent runs first. limit <= 0 means 100.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, runQuery+`
GROUP BY r.id
ORDER BY r.created_at DESC, r.id DESC
LIMIT ?;
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	out := make([]Run, 0, limit)
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return out, nil
}

const runQuery = `
SELECT r.id, r.label, r.network, r.source, r.created_at,
       COUNT(d.location), COUNT(d.distance)
FROM runs r LEFT JOIN distances d ON d.run_id = r.id`

func (s *Store) run(ctx context.Context, id int64) (*Run, error) {
	row := s.db.QueryRowContext(ctx, runQuery+` WHERE r.id = ? GROUP BY r.id;`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return &r, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r       Run
		created string
	)
	if err := sc.Scan(&r.ID, &r.Label, &r.Network, &r.Source, &created, &r.Locations, &r.Reachable); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return Run{}, fmt.Errorf("run %d: created_at: %w", r.ID, err)
	}
	r.CreatedAt = t

	return r, nil
}
