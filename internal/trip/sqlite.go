package trip

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// SQLitePersister stores session state in a local SQLite database so trip
// state survives process restarts without needing the Postgres catalog.
type SQLitePersister struct {
	db *sql.DB
}

// NewSQLitePersister opens (or creates) the session database at path and
// ensures the schema exists. Pass ":memory:" for a throwaway store.
func NewSQLitePersister(path string) (*SQLitePersister, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=10000")
	if err != nil {
		return nil, fmt.Errorf("trip.NewSQLitePersister: open: %w", err)
	}
	db.SetMaxOpenConns(4)

	const schema = `
		CREATE TABLE IF NOT EXISTS session_state (
			session_id TEXT NOT NULL,
			key        TEXT NOT NULL,
			value      TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (session_id, key)
		);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("trip.NewSQLitePersister: schema: %w", err)
	}
	return &SQLitePersister{db: db}, nil
}

// Close releases the underlying database handle.
func (p *SQLitePersister) Close() error {
	return p.db.Close()
}

// Put implements Persister.
func (p *SQLitePersister) Put(ctx context.Context, sessionID, key, value string) error {
	const q = `
		INSERT INTO session_state (session_id, key, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(session_id, key) DO UPDATE SET
			value = excluded.value, updated_at = excluded.updated_at`
	if _, err := p.db.ExecContext(ctx, q, sessionID, key, value); err != nil {
		return fmt.Errorf("trip.SQLitePersister.Put: %w", err)
	}
	return nil
}

// Load implements Persister.
func (p *SQLitePersister) Load(ctx context.Context, sessionID string) (map[string]string, error) {
	const q = `SELECT key, value FROM session_state WHERE session_id = ?`
	rows, err := p.db.QueryContext(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("trip.SQLitePersister.Load: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("trip.SQLitePersister.Load: scan: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trip.SQLitePersister.Load: rows: %w", err)
	}
	return out, nil
}

// Clear implements Persister.
func (p *SQLitePersister) Clear(ctx context.Context, sessionID string) error {
	const q = `DELETE FROM session_state WHERE session_id = ?`
	if _, err := p.db.ExecContext(ctx, q, sessionID); err != nil {
		return fmt.Errorf("trip.SQLitePersister.Clear: %w", err)
	}
	return nil
}
