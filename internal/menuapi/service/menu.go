package service

import (
	"context"
	"errors"
	"time"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/domain"
	"github.com/d3r-restaurant/menu-api/internal/menuapi/store"
	"github.com/d3r-restaurant/menu-api/pkg/slogx"
)

// ErrMenuItemNotFound is returned when a referenced menu item does not exist.
var ErrMenuItemNotFound = errors.New("menu item not found")

const (
	defaultMenuPageSize = 100
	maxMenuPageSize     = 500
)

// MenuService owns the menu catalog CRUD operations.
type MenuService struct {
	Items store.MenuItems
}

// List returns a page of the catalog. limit <= 0 falls back to the default
// page size; skip < 0 is treated as 0.
func (s *MenuService) List(ctx context.Context, skip, limit int) ([]domain.MenuItem, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultMenuPageSize
	}
	if limit > maxMenuPageSize {
		limit = maxMenuPageSize
	}
	return s.Items.ListMenuItems(ctx, skip, limit)
}

// Get fetches a single item by id.
func (s *MenuService) Get(ctx context.Context, id int64) (domain.MenuItem, error) {
	item, err := s.Items.GetMenuItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MenuItem{}, ErrMenuItemNotFound
		}
		return domain.MenuItem{}, err
	}
	return item, nil
}

// Create adds a new item and returns it with the store-assigned id.
func (s *MenuService) Create(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	l := slogx.FromContext(ctx)

	item.CreatedAt = time.Now().UTC()
	created, err := s.Items.CreateMenuItem(ctx, item)
	if err != nil {
		return domain.MenuItem{}, err
	}

	l.Info("menu item created", "id", created.ID, "name", created.Name)
	return created, nil
}

// Update merges the present fields of the patch into an existing item and
// persists the result. Absent fields keep their stored values.
func (s *MenuService) Update(ctx context.Context, id int64, patch domain.MenuItemPatch) (domain.MenuItem, error) {
	l := slogx.FromContext(ctx)

	item, err := s.Items.GetMenuItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MenuItem{}, ErrMenuItemNotFound
		}
		return domain.MenuItem{}, err
	}

	patch.Apply(&item)

	if err := s.Items.UpdateMenuItem(ctx, item); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MenuItem{}, ErrMenuItemNotFound
		}
		return domain.MenuItem{}, err
	}

	l.Info("menu item updated", "id", id)
	return item, nil
}

// Delete removes an item by id.
func (s *MenuService) Delete(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx)

	if err := s.Items.DeleteMenuItem(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}

	l.Info("menu item deleted", "id", id)
	return nil
}
