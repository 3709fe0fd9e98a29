// Package appstate caches repository results for presentation. Each view
// holds the last loaded data alongside a loading flag, the last error, and
// the active page/query/filter cursors. It is purely derived state: every
// mutation round-trips through the store, and the cache is patched only from
// what the store returned.
package appstate

import (
	"context"
	"sync"

	"findmystuff/internal/db"
	"findmystuff/internal/model"
	"findmystuff/internal/store"
	"findmystuff/internal/validate"
)

// ItemView is a snapshot of the cached item list.
type ItemView struct {
	Items      []model.Item
	Total      int
	Page       int
	PageSize   int
	Query      string
	LocationID string
	Loading    bool
	Err        error
}

// Items caches paginated item results.
type Items struct {
	mu   sync.Mutex
	db   *db.DB
	view ItemView
}

// NewItems creates an empty item view backed by database.
func NewItems(database *db.DB) *Items {
	return &Items{
		db:   database,
		view: ItemView{Page: 1, PageSize: store.DefaultPageSize},
	}
}

// View returns the current snapshot.
func (s *Items) View() ItemView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// ClearError discards the last error.
func (s *Items) ClearError() {
	s.mu.Lock()
	s.view.Err = nil
	s.mu.Unlock()
}

// Load replaces the view with the given page of all items.
func (s *Items) Load(ctx context.Context, page int) error {
	s.begin()
	result, err := store.ListItems(ctx, s.db, page, s.pageSize())
	return s.finish(result, err, page, "", "")
}

// Search replaces the view with a page of search results.
func (s *Items) Search(ctx context.Context, query string, page int) error {
	s.begin()
	if err := validate.SearchQuery(query); err != nil {
		return s.finish(nil, err, page, query, "")
	}
	result, err := store.SearchItems(ctx, s.db, query, page, s.pageSize())
	return s.finish(result, err, page, query, "")
}

// FilterByLocation replaces the view with a page of items stored at
// locationID.
func (s *Items) FilterByLocation(ctx context.Context, locationID string, page int) error {
	s.begin()
	result, err := store.ItemsByLocation(ctx, s.db, locationID, page, s.pageSize())
	return s.finish(result, err, page, "", locationID)
}

// Create persists a new item and prepends it to the cached list (items are
// ordered newest first).
func (s *Items) Create(ctx context.Context, params store.CreateItemParams) (*model.Item, error) {
	s.begin()
	item, err := store.CreateItem(ctx, s.db, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Loading = false
	if err != nil {
		s.view.Err = err
		return nil, err
	}
	s.view.Items = append([]model.Item{*item}, s.view.Items...)
	s.view.Total++
	return item, nil
}

// Update persists a partial update and patches the cached copy.
func (s *Items) Update(ctx context.Context, id string, params store.UpdateItemParams) (*model.Item, error) {
	s.begin()
	item, err := store.UpdateItem(ctx, s.db, id, params)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Loading = false
	if err != nil {
		s.view.Err = err
		return nil, err
	}
	for i := range s.view.Items {
		if s.view.Items[i].ID == item.ID {
			s.view.Items[i] = *item
			break
		}
	}
	return item, nil
}

// Delete removes an item and drops it from the cache.
func (s *Items) Delete(ctx context.Context, id string) error {
	s.begin()
	err := store.DeleteItem(ctx, s.db, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Loading = false
	if err != nil {
		s.view.Err = err
		return err
	}
	for i := range s.view.Items {
		if s.view.Items[i].ID == id {
			s.view.Items = append(s.view.Items[:i], s.view.Items[i+1:]...)
			break
		}
	}
	if s.view.Total > 0 {
		s.view.Total--
	}
	return nil
}

func (s *Items) begin() {
	s.mu.Lock()
	s.view.Loading = true
	s.view.Err = nil
	s.mu.Unlock()
}

func (s *Items) pageSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.PageSize
}

func (s *Items) finish(result *store.ItemPage, err error, page int, query, locationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.Loading = false
	if err != nil {
		s.view.Err = err
		return err
	}
	s.view.Items = result.Items
	s.view.Total = result.Total
	s.view.Page = page
	s.view.Query = query
	s.view.LocationID = locationID
	return nil
}
