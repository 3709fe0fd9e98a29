package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB is the handle through which all persisted reads and writes pass. Open
// it once per process, inject it into the repositories, and close it on
// shutdown. Concurrent calls are serialized by SQLite's own transaction
// model; no additional locking is imposed here.
type DB struct {
	sql *sql.DB
}

// Open opens a SQLite database at path and configures pragmas.
func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Set pragmas for performance and correctness. Foreign keys stay off:
	// items.location_id is a weak reference and must survive location deletes.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return &DB{sql: conn}, nil
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.sql.Close()
}
