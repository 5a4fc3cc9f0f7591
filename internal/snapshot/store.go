package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"rollcall/internal/config"
	"rollcall/internal/records"
)

// ErrNotFound indicates the requested snapshot does not exist.
var ErrNotFound = errors.New("snapshot not found")

// Snapshot describes a persisted dataset without its rows.
type Snapshot struct {
	ID          int64
	IngestID    string
	Source      string
	IngestedAt  time.Time
	RecordCount int
	Columns     records.ColumnSet
}

// Store manages snapshot persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the snapshot database.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := filepath.Join(cfg.Paths.DataDir, "snapshots.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Save persists a dataset and returns its snapshot metadata.
func (s *Store) Save(ctx context.Context, source string, ds records.Dataset) (*Snapshot, error) {
	columnsJSON, err := marshalColumns(ds.Columns)
	if err != nil {
		return nil, err
	}

	ingestID := uuid.NewString()
	ingestedAt := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO snapshots (ingest_id, source, ingested_at, record_count, columns_json)
         VALUES (?, ?, ?, ?, ?)`,
		ingestID,
		source,
		ingestedAt.Format(time.RFC3339Nano),
		len(ds.Rows),
		columnsJSON,
	)
	if err != nil {
		return nil, fmt.Errorf("insert snapshot: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	stmt, err := tx.PrepareContext(
		ctx,
		`INSERT INTO snapshot_rows (
            snapshot_id, row_index, identity_key, contact_key, location,
            gender, age_years, disability, recorded_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return nil, fmt.Errorf("prepare row insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range ds.Rows {
		if _, err := stmt.ExecContext(
			ctx,
			id,
			rec.Row,
			rec.IdentityKey,
			rec.ContactKey,
			rec.Location,
			rec.Gender,
			nullableFloat(rec.AgeYears),
			nullableString(rec.Disability),
			nullableTime(rec.Timestamp),
		); err != nil {
			return nil, fmt.Errorf("insert row %d: %w", rec.Row, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot: %w", err)
	}

	return &Snapshot{
		ID:          id,
		IngestID:    ingestID,
		Source:      source,
		IngestedAt:  ingestedAt,
		RecordCount: len(ds.Rows),
		Columns:     ds.Columns,
	}, nil
}

// Get returns a snapshot and its dataset by identifier.
func (s *Store) Get(ctx context.Context, id int64) (*Snapshot, records.Dataset, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, ingest_id, source, ingested_at, record_count, columns_json
         FROM snapshots WHERE id = ?`,
		id,
	)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, records.Dataset{}, ErrNotFound
	}
	if err != nil {
		return nil, records.Dataset{}, err
	}

	ds, err := s.loadRows(ctx, snap)
	if err != nil {
		return nil, records.Dataset{}, err
	}
	return snap, ds, nil
}

// Latest returns the most recently saved snapshot and its dataset.
func (s *Store) Latest(ctx context.Context) (*Snapshot, records.Dataset, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT id, ingest_id, source, ingested_at, record_count, columns_json
         FROM snapshots ORDER BY id DESC LIMIT 1`,
	)
	snap, err := scanSnapshot(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, records.Dataset{}, ErrNotFound
	}
	if err != nil {
		return nil, records.Dataset{}, err
	}

	ds, err := s.loadRows(ctx, snap)
	if err != nil {
		return nil, records.Dataset{}, err
	}
	return snap, ds, nil
}

// List returns snapshot metadata ordered newest first.
func (s *Store) List(ctx context.Context) ([]*Snapshot, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, ingest_id, source, ingested_at, record_count, columns_json
         FROM snapshots ORDER BY id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}

// Delete removes a snapshot and its rows by identifier.
func (s *Store) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete snapshot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// Clear removes all snapshots.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM snapshots`)
	if err != nil {
		return 0, fmt.Errorf("clear snapshots: %w", err)
	}
	return res.RowsAffected()
}

func (s *Store) loadRows(ctx context.Context, snap *Snapshot) (records.Dataset, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT row_index, identity_key, contact_key, location, gender, age_years, disability, recorded_at
         FROM snapshot_rows WHERE snapshot_id = ? ORDER BY row_index`,
		snap.ID,
	)
	if err != nil {
		return records.Dataset{}, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	out := make([]records.Record, 0, snap.RecordCount)
	for rows.Next() {
		var (
			rec        records.Record
			ageYears   sql.NullFloat64
			disability sql.NullString
			recordedAt sql.NullString
		)
		if err := rows.Scan(
			&rec.Row,
			&rec.IdentityKey,
			&rec.ContactKey,
			&rec.Location,
			&rec.Gender,
			&ageYears,
			&disability,
			&recordedAt,
		); err != nil {
			return records.Dataset{}, fmt.Errorf("scan row: %w", err)
		}
		if ageYears.Valid {
			v := ageYears.Float64
			rec.AgeYears = &v
		}
		if disability.Valid {
			v := disability.String
			rec.Disability = &v
		}
		if recordedAt.Valid {
			ts, err := time.Parse(time.RFC3339Nano, recordedAt.String)
			if err != nil {
				return records.Dataset{}, fmt.Errorf("parse recorded_at: %w", err)
			}
			rec.Timestamp = &ts
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return records.Dataset{}, err
	}

	return records.Dataset{Rows: out, Columns: snap.Columns}, nil
}

func scanSnapshot(scanner interface{ Scan(dest ...any) error }) (*Snapshot, error) {
	var (
		snap        Snapshot
		ingestedRaw string
		columnsJSON string
	)
	if err := scanner.Scan(
		&snap.ID,
		&snap.IngestID,
		&snap.Source,
		&ingestedRaw,
		&snap.RecordCount,
		&columnsJSON,
	); err != nil {
		return nil, err
	}

	ingestedAt, err := time.Parse(time.RFC3339Nano, ingestedRaw)
	if err != nil {
		return nil, fmt.Errorf("parse ingested_at: %w", err)
	}
	snap.IngestedAt = ingestedAt

	columns, err := unmarshalColumns(columnsJSON)
	if err != nil {
		return nil, err
	}
	snap.Columns = columns

	return &snap, nil
}

func marshalColumns(set records.ColumnSet) (string, error) {
	cols := set.Columns()
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = string(col)
	}
	data, err := json.Marshal(names)
	if err != nil {
		return "", fmt.Errorf("marshal columns: %w", err)
	}
	return string(data), nil
}

func unmarshalColumns(raw string) (records.ColumnSet, error) {
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("unmarshal columns: %w", err)
	}
	cols := make([]records.Column, len(names))
	for i, name := range names {
		cols[i] = records.Column(name)
	}
	return records.NewColumnSet(cols...), nil
}

func nullableString(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableFloat(value *float64) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableTime(value *time.Time) any {
	if value == nil {
		return nil
	}
	return value.UTC().Format(time.RFC3339Nano)
}
