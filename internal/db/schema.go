package db

import "fmt"

// schema is the full database schema. Column names are a stable contract
// with existing databases, so they never change. items.location_id carries
// no FOREIGN KEY clause on purpose: deleting a location must never be
// rejected or cascaded because items still point at it.
const schema = `
CREATE TABLE IF NOT EXISTS locations (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    photo      TEXT,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT,
    photo       TEXT,
    location_id TEXT,
    created_at  INTEGER NOT NULL,
    updated_at  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_name ON items(name);
CREATE INDEX IF NOT EXISTS idx_items_location ON items(location_id);
CREATE INDEX IF NOT EXISTS idx_items_created_at ON items(created_at);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
// Must run once per process before any repository call.
func EnsureSchema(d *DB) error {
	_, err := d.sql.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
