package domain

import "time"

// MenuItem is a catalog entry, keyed by a numeric identifier assigned by the
// store.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Category    string
	Image       string
	Popular     bool
	CreatedAt   time.Time
}

// MenuItemPatch carries the fields of a partial update. Nil fields stay
// untouched; the merge into the stored record is explicit, field by field.
type MenuItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Image       *string
	Popular     *bool
}

// Apply merges the present fields of the patch into the item.
func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Image != nil {
		item.Image = *p.Image
	}
	if p.Popular != nil {
		item.Popular = *p.Popular
	}
}
