package appstate

import (
	"context"
	"sync"

	"findmystuff/internal/db"
	"findmystuff/internal/model"
	"findmystuff/internal/store"
)

// LocationView is a snapshot of the cached location list.
type LocationView struct {
	Locations []model.Location
	Loading   bool
	Err       error
}

// Locations caches the full location list (small, never paginated).
type Locations struct {
	mu   sync.Mutex
	db   *db.DB
	view LocationView
}

// NewLocations creates an empty location view backed by database.
func NewLocations(database *db.DB) *Locations {
	return &Locations{db: database}
}

// View returns the current snapshot.
func (s *Locations) View() LocationView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// ClearError discards the last error.
func (s *Locations) ClearError() {
	s.mu.Lock()
	s.view.Err = nil
	s.mu.Unlock()
}

// NameFor resolves a location id to its display name from the cache.
// Best-effort on purpose: a dangling reference (or an id not yet loaded)
// resolves to "" so the item rendering degrades to "no location" instead of
// failing.
func (s *Locations) NameFor(id string) string {
	if id == "" {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, loc := range s.view.Locations {
		if loc.ID == id {
			return loc.Name
		}
	}
	return ""
}

// Load replaces the view with all locations, newest first.
func (s *Locations) Load(ctx context.Context) error {
	s.begin()
	locations, err := store.ListLocations(ctx, s.db)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Loading = false
	if err != nil {
		s.view.Err = err
		return err
	}
	s.view.Locations = locations
	return nil
}

// Create persists a new location and prepends it to the cached list.
func (s *Locations) Create(ctx context.Context, name, photo string) (*model.Location, error) {
	s.begin()
	loc, err := store.CreateLocation(ctx, s.db, name, photo)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Loading = false
	if err != nil {
		s.view.Err = err
		return nil, err
	}
	s.view.Locations = append([]model.Location{*loc}, s.view.Locations...)
	return loc, nil
}

// Update persists a partial update and patches the cached copy.
func (s *Locations) Update(ctx context.Context, id string, params store.UpdateLocationParams) (*model.Location, error) {
	s.begin()
	loc, err := store.UpdateLocation(ctx, s.db, id, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Loading = false
	if err != nil {
		s.view.Err = err
		return nil, err
	}
	for i := range s.view.Locations {
		if s.view.Locations[i].ID == loc.ID {
			s.view.Locations[i] = *loc
			break
		}
	}
	return loc, nil
}

// Delete removes a location and drops it from the cache. Items referencing
// it are untouched; their references now dangle by design.
func (s *Locations) Delete(ctx context.Context, id string) error {
	s.begin()
	err := store.DeleteLocation(ctx, s.db, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Loading = false
	if err != nil {
		s.view.Err = err
		return err
	}
	for i := range s.view.Locations {
		if s.view.Locations[i].ID == id {
			s.view.Locations = append(s.view.Locations[:i], s.view.Locations[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Locations) begin() {
	s.mu.Lock()
	s.view.Loading = true
	s.view.Err = nil
	s.mu.Unlock()
}
