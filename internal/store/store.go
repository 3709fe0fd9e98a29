// Package store implements the item and location repositories. Every
// operation is a bounded round trip through the db gateway; compound
// operations (duplicate-name check then insert, existence check then
// delete) run as two sequential statements and rely on the store
// serializing writers.
package store

import (
	"context"
	"time"

	"findmystuff/internal/db"
	"findmystuff/internal/model"
)

// DefaultPageSize is the page size callers use unless they have a reason
// not to.
const DefaultPageSize = 20

// nowMillis returns the current time in milliseconds since epoch, the
// resolution all entity timestamps use.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// nullable maps the empty string to NULL so optional columns stay NULL
// instead of storing "".
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// countRows runs a COUNT(*) query and returns the count.
func countRows(ctx context.Context, database *db.DB, query string, args ...any) (int, error) {
	rows, err := database.Query(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, &model.StorageError{Err: err}
		}
	}
	if err := rows.Err(); err != nil {
		return 0, &model.StorageError{Err: err}
	}
	return n, nil
}
