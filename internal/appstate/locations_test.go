package appstate

import (
	"context"
	"testing"

	"findmystuff/internal/db"
	"findmystuff/internal/store"
)

func TestLocationsLoadAndNameFor(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	loc, err := store.CreateLocation(ctx, database, "Garage", "")
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}

	locations := NewLocations(database)
	if err := locations.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := locations.NameFor(loc.ID); got != "Garage" {
		t.Errorf("expected 'Garage', got %q", got)
	}
	// Dangling or empty references resolve to "no location", never an error.
	if got := locations.NameFor("deleted-location-id"); got != "" {
		t.Errorf("expected empty name for dangling id, got %q", got)
	}
	if got := locations.NameFor(""); got != "" {
		t.Errorf("expected empty name for empty id, got %q", got)
	}
}

func TestLocationsCreateAndDelete(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	locations := NewLocations(database)
	loc, err := locations.Create(ctx, "Attic", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(locations.View().Locations) != 1 {
		t.Fatal("expected created location in cache")
	}

	if err := locations.Delete(ctx, loc.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(locations.View().Locations) != 0 {
		t.Error("expected location dropped from cache")
	}
	if locations.NameFor(loc.ID) != "" {
		t.Error("expected deleted location to no longer resolve")
	}
}

func TestLocationsDuplicateCachesError(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	locations := NewLocations(database)
	locations.Create(ctx, "Garage", "")

	if _, err := locations.Create(ctx, "Garage", ""); err == nil {
		t.Fatal("expected duplicate name error")
	}
	if locations.View().Err == nil {
		t.Error("expected error to be cached in view")
	}
	if len(locations.View().Locations) != 1 {
		t.Errorf("failed create must not grow the cache, got %d", len(locations.View().Locations))
	}
}

func TestLocationsUpdatePatchesCache(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	locations := NewLocations(database)
	loc, _ := locations.Create(ctx, "Garage", "")

	name := "Workshop"
	if _, err := locations.Update(ctx, loc.ID, store.UpdateLocationParams{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got := locations.NameFor(loc.ID); got != "Workshop" {
		t.Errorf("expected 'Workshop', got %q", got)
	}
}
