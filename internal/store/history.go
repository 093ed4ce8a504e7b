package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// History is an optional append-only journal of item movements, kept in a
// SQLite file beside whatever the user pointed --history at. It is
// observability, not state: the task file never depends on it.
type History struct {
	db *sql.DB
}

// Journal actions.
const (
	ActionComplete = "complete" // Todo -> Done transfer
	ActionReopen   = "reopen"   // Done -> Todo transfer
	ActionCopy     = "copy"     // `s` copy of a done item into todo
)

type HistoryEntry struct {
	TS     time.Time
	Action string
	Item   string
}

// OpenHistory opens (creating if needed) the journal at path.
func OpenHistory(ctx context.Context, path string) (*History, error) {
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness when two sessions share a journal.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("history pragma: %w", err)
		}
	}
	const schema = `CREATE TABLE IF NOT EXISTS transfers (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ts TEXT NOT NULL,
  action TEXT NOT NULL,
  item TEXT NOT NULL
);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history schema: %w", err)
	}
	return &History{db: db}, nil
}

// Record appends one journal row.
func (h *History) Record(ctx context.Context, action, item string) error {
	ts := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := h.db.ExecContext(ctx,
		`INSERT INTO transfers (ts, action, item) VALUES (?, ?, ?)`,
		ts, action, item); err != nil {
		return fmt.Errorf("record transfer: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]HistoryEntry, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT ts, action, item FROM transfers ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query transfers: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var ts, action, item string
		if err := rows.Scan(&ts, &action, &item); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parse transfer ts: %w", err)
		}
		out = append(out, HistoryEntry{TS: t, Action: action, Item: item})
	}
	return out, rows.Err()
}

func (h *History) Close() error {
	return h.db.Close()
}
