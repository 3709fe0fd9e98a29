package db

import (
	"context"
	"database/sql"

	"findmystuff/internal/model"
)

// Query executes a parametrized read statement and returns the row-set.
// Any driver error is reported as a model.StorageError so callers never
// branch on the driver's native errors.
func (d *DB) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &model.StorageError{Err: err}
	}
	return rows, nil
}

// Exec executes a write statement (insert, update or delete) and returns
// the affected-row count.
func (d *DB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := d.sql.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, &model.StorageError{Err: err}
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, &model.StorageError{Err: err}
	}
	return n, nil
}

// Clear deletes all rows from every table. For tests.
func (d *DB) Clear(ctx context.Context) error {
	for _, stmt := range []string{"DELETE FROM items", "DELETE FROM locations"} {
		if _, err := d.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
