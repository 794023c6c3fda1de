package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/percwalk/sim"
)

// ErrNoPath indicates a RunStore constructed with an empty database path.
var ErrNoPath = errors.New("store: sqlite path is required")

// Run is one indexed simulation run.
type Run struct {
	ID        string
	CreatedAt time.Time
	Config    sim.Config

	OccupiedSites  int
	LargestCluster int

	Artifacts Artifacts
}

// RunStore indexes simulation runs in a SQLite database.
type RunStore struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

// NewRunStore creates a store backed by the SQLite file at path. Call
// Init before use.
func NewRunStore(path string) *RunStore {
	return &RunStore{path: path}
}

// Init opens the database and creates the schema if needed. Idempotent.
func (s *RunStore) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return ErrNoPath
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id              TEXT PRIMARY KEY,
			created_at      TEXT NOT NULL,
			config          TEXT NOT NULL,
			occupied_sites  INTEGER NOT NULL,
			largest_cluster INTEGER NOT NULL,
			cluster_path    TEXT NOT NULL,
			walks_path      TEXT NOT NULL,
			data_path       TEXT NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// Close releases the database handle.
func (s *RunStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *RunStore) getDB() (*sql.DB, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, errors.New("store: run store not initialized")
	}
	return s.db, nil
}

// SaveRun inserts or replaces a run record. An empty ID is assigned a
// fresh UUID; a zero CreatedAt is stamped now. The (possibly updated)
// run is returned.
func (s *RunStore) SaveRun(ctx context.Context, run Run) (Run, error) {
	db, err := s.getDB()
	if err != nil {
		return run, err
	}

	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	cfg, err := json.Marshal(run.Config)
	if err != nil {
		return run, fmt.Errorf("store: encode config: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, config, occupied_sites, largest_cluster,
			cluster_path, walks_path, data_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			created_at = excluded.created_at,
			config = excluded.config,
			occupied_sites = excluded.occupied_sites,
			largest_cluster = excluded.largest_cluster,
			cluster_path = excluded.cluster_path,
			walks_path = excluded.walks_path,
			data_path = excluded.data_path
	`, run.ID, run.CreatedAt.Format(time.RFC3339Nano), string(cfg),
		run.OccupiedSites, run.LargestCluster,
		run.Artifacts.Cluster, run.Artifacts.Walks, run.Artifacts.Data)
	return run, err
}

// GetRun fetches a run by id. The boolean reports whether it exists.
func (s *RunStore) GetRun(ctx context.Context, id string) (Run, bool, error) {
	db, err := s.getDB()
	if err != nil {
		return Run{}, false, err
	}
	row := db.QueryRowContext(ctx, `
		SELECT id, created_at, config, occupied_sites, largest_cluster,
			cluster_path, walks_path, data_path
		FROM runs WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return run, true, nil
}

// ListRuns returns all runs ordered by creation time, newest first.
func (s *RunStore) ListRuns(ctx context.Context) ([]Run, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, `
		SELECT id, created_at, config, occupied_sites, largest_cluster,
			cluster_path, walks_path, data_path
		FROM runs ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		run     Run
		created string
		cfg     string
	)
	if err := sc.Scan(&run.ID, &created, &cfg, &run.OccupiedSites,
		&run.LargestCluster, &run.Artifacts.Cluster, &run.Artifacts.Walks,
		&run.Artifacts.Data); err != nil {
		return Run{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Run{}, fmt.Errorf("store: parse created_at: %w", err)
	}
	run.CreatedAt = t
	if err := json.Unmarshal([]byte(cfg), &run.Config); err != nil {
		return Run{}, fmt.Errorf("store: decode config: %w", err)
	}
	return run, nil
}
