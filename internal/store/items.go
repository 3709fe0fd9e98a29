package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"findmystuff/internal/db"
	"findmystuff/internal/model"
	"findmystuff/internal/validate"
)

const itemColumns = `id, name, description, photo, location_id, created_at, updated_at`

// CreateItemParams holds the fields of a new item. Only Name is required.
// LocationID is stored as given: it is never checked against the locations
// table, so pointing at a location that was (or will be) deleted is fine.
type CreateItemParams struct {
	Name        string
	Description string
	Photo       string
	LocationID  string
}

// UpdateItemParams holds the fields of a partial item update. Nil fields are
// left unchanged; a pointer to the empty string clears the column.
type UpdateItemParams struct {
	Name        *string
	Description *string
	Photo       *string
	LocationID  *string
}

// ItemPage is one page of items plus the total count of matching rows.
type ItemPage struct {
	Items []model.Item `json:"items"`
	Total int          `json:"total"`
}

// CreateItem creates a new item.
func CreateItem(ctx context.Context, database *db.DB, params CreateItemParams) (*model.Item, error) {
	if err := validate.ItemName(params.Name); err != nil {
		return nil, err
	}

	now := nowMillis()
	item := &model.Item{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(params.Name),
		Description: strings.TrimSpace(params.Description),
		Photo:       params.Photo,
		LocationID:  params.LocationID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := database.Exec(ctx,
		`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, nullable(item.Description), nullable(item.Photo),
		nullable(item.LocationID), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem returns an item by ID.
func GetItem(ctx context.Context, database *db.DB, id string) (*model.Item, error) {
	rows, err := database.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, &model.StorageError{Err: err}
		}
		return nil, &model.NotFoundError{Resource: "Item"}
	}
	return scanItem(rows)
}

// ListItems returns the requested 1-indexed page of all items, newest first,
// along with the total item count. Pages past the end come back empty with
// the correct total.
func ListItems(ctx context.Context, database *db.DB, page, pageSize int) (*ItemPage, error) {
	total, err := countRows(ctx, database, `SELECT COUNT(*) FROM items`)
	if err != nil {
		return nil, err
	}

	items, err := queryItems(ctx, database,
		`SELECT `+itemColumns+` FROM items ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, err
	}
	return &ItemPage{Items: items, Total: total}, nil
}

// SearchItems returns items whose name or description contains query,
// case-insensitively. An empty query matches every item. Ordering and
// pagination are the same as ListItems; there is no relevance ranking.
func SearchItems(ctx context.Context, database *db.DB, query string, page, pageSize int) (*ItemPage, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	total, err := countRows(ctx, database,
		`SELECT COUNT(*) FROM items WHERE LOWER(name) LIKE ? OR LOWER(description) LIKE ?`,
		pattern, pattern,
	)
	if err != nil {
		return nil, err
	}

	items, err := queryItems(ctx, database,
		`SELECT `+itemColumns+` FROM items
		 WHERE LOWER(name) LIKE ? OR LOWER(description) LIKE ?
		 ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		pattern, pattern, pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, err
	}
	return &ItemPage{Items: items, Total: total}, nil
}

// ItemsByLocation returns items whose location_id exactly matches
// locationID. The location itself is not checked for existence.
func ItemsByLocation(ctx context.Context, database *db.DB, locationID string, page, pageSize int) (*ItemPage, error) {
	total, err := countRows(ctx, database,
		`SELECT COUNT(*) FROM items WHERE location_id = ?`, locationID,
	)
	if err != nil {
		return nil, err
	}

	items, err := queryItems(ctx, database,
		`SELECT `+itemColumns+` FROM items WHERE location_id = ?
		 ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		locationID, pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, err
	}
	return &ItemPage{Items: items, Total: total}, nil
}

// UpdateItem applies a partial update. A provided name is re-validated;
// every other provided field overwrites unconditionally, including clearing
// the location reference. updated_at always refreshes. Returns the
// re-fetched item.
func UpdateItem(ctx context.Context, database *db.DB, id string, params UpdateItemParams) (*model.Item, error) {
	if _, err := GetItem(ctx, database, id); err != nil {
		return nil, err
	}

	fields := []string{}
	values := []any{}

	if params.Name != nil {
		if err := validate.ItemName(*params.Name); err != nil {
			return nil, err
		}
		fields = append(fields, "name = ?")
		values = append(values, strings.TrimSpace(*params.Name))
	}
	if params.Description != nil {
		fields = append(fields, "description = ?")
		values = append(values, nullable(strings.TrimSpace(*params.Description)))
	}
	if params.Photo != nil {
		fields = append(fields, "photo = ?")
		values = append(values, nullable(*params.Photo))
	}
	if params.LocationID != nil {
		fields = append(fields, "location_id = ?")
		values = append(values, nullable(*params.LocationID))
	}

	fields = append(fields, "updated_at = ?")
	values = append(values, nowMillis(), id)

	_, err := database.Exec(ctx,
		`UPDATE items SET `+strings.Join(fields, ", ")+` WHERE id = ?`, values...,
	)
	if err != nil {
		return nil, err
	}
	return GetItem(ctx, database, id)
}

// DeleteItem physically removes an item.
func DeleteItem(ctx context.Context, database *db.DB, id string) error {
	if _, err := GetItem(ctx, database, id); err != nil {
		return err
	}
	_, err := database.Exec(ctx, `DELETE FROM items WHERE id = ?`, id)
	return err
}

func queryItems(ctx context.Context, database *db.DB, query string, args ...any) ([]model.Item, error) {
	rows, err := database.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Err: err}
	}
	return items, nil
}

func scanItem(rows *sql.Rows) (*model.Item, error) {
	item := &model.Item{}
	var description, photo, locationID sql.NullString
	if err := rows.Scan(&item.ID, &item.Name, &description, &photo, &locationID,
		&item.CreatedAt, &item.UpdatedAt); err != nil {
		return nil, &model.StorageError{Err: err}
	}
	item.Description = description.String
	item.Photo = photo.String
	item.LocationID = locationID.String
	return item, nil
}
