package appstate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"findmystuff/internal/db"
	"findmystuff/internal/model"
	"findmystuff/internal/store"
)

func TestItemsLoad(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"Camera", "Laptop", "Keys"} {
		if _, err := store.CreateItem(ctx, database, store.CreateItemParams{Name: name}); err != nil {
			t.Fatalf("CreateItem %q: %v", name, err)
		}
	}

	items := NewItems(database)
	if err := items.Load(ctx, 1); err != nil {
		t.Fatalf("Load: %v", err)
	}

	view := items.View()
	if len(view.Items) != 3 || view.Total != 3 {
		t.Errorf("expected 3 items, got %d (total %d)", len(view.Items), view.Total)
	}
	if view.Loading {
		t.Error("loading flag should be cleared after Load")
	}
	if view.Err != nil {
		t.Errorf("unexpected error in view: %v", view.Err)
	}
	if view.Page != 1 {
		t.Errorf("expected page 1, got %d", view.Page)
	}
}

func TestItemsSearchSetsCursors(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	store.CreateItem(ctx, database, store.CreateItemParams{Name: "Canon Camera"})
	store.CreateItem(ctx, database, store.CreateItemParams{Name: "Laptop"})

	items := NewItems(database)
	if err := items.Search(ctx, "camera", 1); err != nil {
		t.Fatalf("Search: %v", err)
	}

	view := items.View()
	if len(view.Items) != 1 {
		t.Errorf("expected 1 match, got %d", len(view.Items))
	}
	if view.Query != "camera" {
		t.Errorf("expected query cursor 'camera', got %q", view.Query)
	}
}

func TestItemsSearchRejectsOverlongQuery(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	items := NewItems(database)
	err := items.Search(ctx, strings.Repeat("q", 201), 1)

	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if items.View().Err == nil {
		t.Error("expected error to be cached in view")
	}
}

func TestItemsCreatePrepends(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	items := NewItems(database)
	items.Load(ctx, 1)

	created, err := items.Create(ctx, store.CreateItemParams{Name: "Camera"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	view := items.View()
	if view.Total != 1 {
		t.Errorf("expected total 1, got %d", view.Total)
	}
	if len(view.Items) != 1 || view.Items[0].ID != created.ID {
		t.Error("expected created item at the front of the cache")
	}
}

func TestItemsCreateErrorCached(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	items := NewItems(database)
	_, err := items.Create(ctx, store.CreateItemParams{Name: "  "})
	if err == nil {
		t.Fatal("expected validation error")
	}

	view := items.View()
	if view.Err == nil {
		t.Error("expected error to be cached in view")
	}
	if view.Total != 0 {
		t.Errorf("failed create must not change total, got %d", view.Total)
	}

	items.ClearError()
	if items.View().Err != nil {
		t.Error("expected ClearError to reset the error")
	}
}

func TestItemsUpdatePatchesCache(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	items := NewItems(database)
	created, _ := items.Create(ctx, store.CreateItemParams{Name: "Camera"})

	name := "Camcorder"
	if _, err := items.Update(ctx, created.ID, store.UpdateItemParams{Name: &name}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	view := items.View()
	if view.Items[0].Name != "Camcorder" {
		t.Errorf("expected cached item to be patched, got %q", view.Items[0].Name)
	}
}

func TestItemsDeleteDropsFromCache(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	items := NewItems(database)
	created, _ := items.Create(ctx, store.CreateItemParams{Name: "Camera"})

	if err := items.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	view := items.View()
	if len(view.Items) != 0 || view.Total != 0 {
		t.Errorf("expected empty cache, got %d items (total %d)", len(view.Items), view.Total)
	}
}
