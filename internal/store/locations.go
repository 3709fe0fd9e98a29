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

// UpdateLocationParams holds the fields of a partial location update. Nil
// fields are left unchanged.
type UpdateLocationParams struct {
	Name  *string
	Photo *string
}

// CreateLocation creates a new storage location. The name is trimmed and
// must be unique (case-sensitive) across all locations.
func CreateLocation(ctx context.Context, database *db.DB, name, photo string) (*model.Location, error) {
	if err := validate.LocationName(name); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)

	taken, err := locationNameTaken(ctx, database, name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &model.ValidationError{Message: "Location with this name already exists"}
	}

	now := nowMillis()
	loc := &model.Location{
		ID:        uuid.NewString(),
		Name:      name,
		Photo:     photo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = database.Exec(ctx,
		`INSERT INTO locations (id, name, photo, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		loc.ID, loc.Name, nullable(loc.Photo), loc.CreatedAt, loc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return loc, nil
}

// GetLocation returns a location by ID.
func GetLocation(ctx context.Context, database *db.DB, id string) (*model.Location, error) {
	rows, err := database.Query(ctx,
		`SELECT id, name, photo, created_at, updated_at FROM locations WHERE id = ?`, id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, &model.StorageError{Err: err}
		}
		return nil, &model.NotFoundError{Resource: "Location"}
	}
	return scanLocation(rows)
}

// ListLocations returns all locations, newest first. No pagination: the
// dataset is assumed small.
func ListLocations(ctx context.Context, database *db.DB) ([]model.Location, error) {
	rows, err := database.Query(ctx,
		`SELECT id, name, photo, created_at, updated_at FROM locations ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []model.Location
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, *loc)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Err: err}
	}
	return locations, nil
}

// UpdateLocation applies a partial update. A provided name is trimmed,
// validated and checked for collisions against every other location.
// updated_at refreshes even if no visible field changed. Returns the
// re-fetched location.
func UpdateLocation(ctx context.Context, database *db.DB, id string, params UpdateLocationParams) (*model.Location, error) {
	if _, err := GetLocation(ctx, database, id); err != nil {
		return nil, err
	}

	fields := []string{}
	values := []any{}

	if params.Name != nil {
		if err := validate.LocationName(*params.Name); err != nil {
			return nil, err
		}
		name := strings.TrimSpace(*params.Name)

		taken, err := locationNameTaken(ctx, database, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, &model.ValidationError{Message: "Location with this name already exists"}
		}
		fields = append(fields, "name = ?")
		values = append(values, name)
	}
	if params.Photo != nil {
		fields = append(fields, "photo = ?")
		values = append(values, nullable(*params.Photo))
	}

	fields = append(fields, "updated_at = ?")
	values = append(values, nowMillis(), id)

	_, err := database.Exec(ctx,
		`UPDATE locations SET `+strings.Join(fields, ", ")+` WHERE id = ?`, values...,
	)
	if err != nil {
		return nil, err
	}
	return GetLocation(ctx, database, id)
}

// DeleteLocation physically removes a location. Items referencing it keep
// their location_id untouched.
func DeleteLocation(ctx context.Context, database *db.DB, id string) error {
	if _, err := GetLocation(ctx, database, id); err != nil {
		return err
	}
	_, err := database.Exec(ctx, `DELETE FROM locations WHERE id = ?`, id)
	return err
}

// locationNameTaken reports whether a location other than excludeID already
// uses name. Exact match: uniqueness is case-sensitive.
func locationNameTaken(ctx context.Context, database *db.DB, name, excludeID string) (bool, error) {
	query := `SELECT id FROM locations WHERE name = ?`
	args := []any{name}
	if excludeID != "" {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}

	rows, err := database.Query(ctx, query, args...)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	if rows.Next() {
		return true, nil
	}
	if err := rows.Err(); err != nil {
		return false, &model.StorageError{Err: err}
	}
	return false, nil
}

func scanLocation(rows *sql.Rows) (*model.Location, error) {
	loc := &model.Location{}
	var photo sql.NullString
	if err := rows.Scan(&loc.ID, &loc.Name, &photo, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
		return nil, &model.StorageError{Err: err}
	}
	loc.Photo = photo.String
	return loc, nil
}
