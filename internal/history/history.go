// Package history keeps a SQLite journal of every occurrence of an event.
//
// The store file only remembers the last time each event was done; the
// journal keeps the full record so `timesince log` can show past marks.
// The journal is append-only: removing an event does not erase its rows.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema (occurrences table + event/time index)
const currentSchemaVersion = 1

// Kind distinguishes why an occurrence was recorded.
type Kind string

const (
	// KindAdd marks the creation of an event.
	KindAdd Kind = "add"

	// KindDid marks an existing event being done again.
	KindDid Kind = "did"
)

// Occurrence is one journal row.
type Occurrence struct {
	ID         string
	EventName  string
	Kind       Kind
	OccurredAt time.Time
}

// Journal provides durable storage for event occurrences.
type Journal struct {
	db *sql.DB
}

// Open creates or opens the journal database at the given path.
// Applies required pragmas and the schema automatically; safe to call
// against an existing database.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to journal: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Record appends an occurrence for an event.
// The row ID is generated here; callers supply name, kind and time.
func (j *Journal) Record(ctx context.Context, name string, kind Kind, at time.Time) (Occurrence, error) {
	occ := Occurrence{
		ID:         uuid.NewString(),
		EventName:  name,
		Kind:       kind,
		OccurredAt: at.UTC(),
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO occurrences (id, event_name, kind, occurred_at)
		VALUES (?, ?, ?, ?)
	`,
		occ.ID,
		occ.EventName,
		string(occ.Kind),
		occ.OccurredAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Occurrence{}, fmt.Errorf("record occurrence: %w", err)
	}

	return occ, nil
}

// ForEvent returns all occurrences of an event in deterministic order:
// occurred_at ASC, then id ASC as a tiebreak.
//
// Returns an empty slice (not nil) if the event has no recorded occurrences.
func (j *Journal) ForEvent(ctx context.Context, name string) ([]Occurrence, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, event_name, kind, occurred_at
		FROM occurrences
		WHERE event_name = ?
		ORDER BY occurred_at ASC, id ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query occurrences: %w", err)
	}
	defer rows.Close()

	return scanOccurrences(rows)
}

// CountForEvent returns the number of recorded occurrences of an event.
func (j *Journal) CountForEvent(ctx context.Context, name string) (int, error) {
	var count int
	err := j.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM occurrences WHERE event_name = ?
	`, name).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count occurrences: %w", err)
	}
	return count, nil
}

func scanOccurrences(rows *sql.Rows) ([]Occurrence, error) {
	var occs []Occurrence
	for rows.Next() {
		var occ Occurrence
		var kind, occurredAt string
		if err := rows.Scan(&occ.ID, &occ.EventName, &kind, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan occurrence: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, occurredAt)
		if err != nil {
			return nil, fmt.Errorf("parse occurred_at: %w", err)
		}
		occ.Kind = Kind(kind)
		occ.OccurredAt = t
		occs = append(occs, occ)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate occurrences: %w", err)
	}

	if occs == nil {
		occs = []Occurrence{}
	}
	return occs, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	return nil
}

// applySchema creates tables if they don't exist and stamps the version.
// This function is idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("get user_version: %w", err)
	}

	// No migrations yet; future schema changes bump currentSchemaVersion
	// and apply deltas here based on the stored version.
	if version < currentSchemaVersion {
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentSchemaVersion)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}

	return nil
}
