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

	_ "modernc.org/sqlite"

	"github.com/spektr-org/prism/engine"
)

// ErrDatasetNotFound is returned by Load for an unknown dataset name.
var ErrDatasetNotFound = errors.New("dataset not found")

const schemaVersion = 1

const schemaDDL = `
CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL);
CREATE TABLE IF NOT EXISTS datasets (
	name         TEXT PRIMARY KEY,
	imported_at  TEXT NOT NULL,
	record_count INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS records (
	dataset TEXT    NOT NULL REFERENCES datasets(name) ON DELETE CASCADE,
	seq     INTEGER NOT NULL,
	body    TEXT    NOT NULL,
	PRIMARY KEY (dataset, seq)
);`

// Dataset describes one imported record store.
type Dataset struct {
	Name        string    `json:"name"`
	ImportedAt  time.Time `json:"importedAt"`
	RecordCount int       `json:"recordCount"`
}

// SqlStore keeps raw record stores in SQLite, one named dataset per import.
// Records are stored as JSON so value kinds survive the round trip.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and creates the schema.
// Creates the parent directory if it does not exist.
func Open(path string) (*SqlStore, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps :memory: databases alive and serialises writers.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := s.db.Exec(schemaDDL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	var v int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.Exec("INSERT INTO schema_version(version) VALUES(?)", schemaVersion); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case v != schemaVersion:
		return fmt.Errorf("unknown schema version %d", v)
	}
	return nil
}

// Close closes the database.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// Import replaces dataset with records in one transaction. Store order is
// kept through the seq column.
func (s *SqlStore) Import(ctx context.Context, dataset string, records []engine.Record) error {
	if dataset == "" {
		return fmt.Errorf("dataset name is empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM records WHERE dataset = ?", dataset); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO datasets(name, imported_at, record_count) VALUES(?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET imported_at = excluded.imported_at, record_count = excluded.record_count`,
		dataset, time.Now().UTC().Format(time.RFC3339Nano), len(records))
	if err != nil {
		return fmt.Errorf("upsert dataset: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO records(dataset, seq, body) VALUES(?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		body, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode record %d: %w", i, err)
		}
		if _, err := stmt.ExecContext(ctx, dataset, i, string(body)); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit import tx: %w", err)
	}
	return nil
}

// Load returns the records of dataset in insertion order.
func (s *SqlStore) Load(ctx context.Context, dataset string) ([]engine.Record, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT record_count FROM datasets WHERE name = ?", dataset).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, dataset)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup dataset: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT body FROM records WHERE dataset = ? ORDER BY seq", dataset)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := make([]engine.Record, 0, count)
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var r engine.Record
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			return nil, fmt.Errorf("decode record: %w", err)
		}
		if r == nil {
			r = engine.Record{}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// View loads dataset and wraps it as a RecordView.
func (s *SqlStore) View(ctx context.Context, dataset string) (engine.RecordView, error) {
	records, err := s.Load(ctx, dataset)
	if err != nil {
		return nil, err
	}
	return engine.NewSliceView(records), nil
}

// Datasets lists the imported datasets by name.
func (s *SqlStore) Datasets(ctx context.Context) ([]Dataset, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, imported_at, record_count FROM datasets ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query datasets: %w", err)
	}
	defer rows.Close()

	var out []Dataset
	for rows.Next() {
		var (
			d  Dataset
			at string
		)
		if err := rows.Scan(&d.Name, &at, &d.RecordCount); err != nil {
			return nil, fmt.Errorf("scan dataset: %w", err)
		}
		d.ImportedAt, _ = time.Parse(time.RFC3339Nano, at)
		out = append(out, d)
	}
	return out, rows.Err()
}
