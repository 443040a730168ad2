package sqlite

import (
	"context"
	"database/sql"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/domain"
)

type menuItemsRepo struct {
	db *sql.DB
}

const menuItemColumns = `id, name, description, price, category, image, popular, created_at`

func (r *menuItemsRepo) CreateMenuItem(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO menu_items (name, description, price, category, image, popular, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.Name, item.Description, item.Price, item.Category, item.Image, item.Popular, item.CreatedAt,
	)
	if err != nil {
		return domain.MenuItem{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.MenuItem{}, err
	}
	item.ID = id
	return item, nil
}

func (r *menuItemsRepo) GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		WHERE id = ?`,
		id,
	)
	return scanMenuItem(row)
}

func (r *menuItemsRepo) ListMenuItems(ctx context.Context, offset, limit int) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+menuItemColumns+`
		FROM menu_items
		ORDER BY id
		LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.MenuItem, 0)
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuItemsRepo) UpdateMenuItem(ctx context.Context, item domain.MenuItem) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE menu_items
		SET name = ?, description = ?, price = ?, category = ?, image = ?, popular = ?
		WHERE id = ?`,
		item.Name, item.Description, item.Price, item.Category, item.Image, item.Popular, item.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func (r *menuItemsRepo) DeleteMenuItem(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func scanMenuItem(row rowScanner) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(
		&item.ID, &item.Name, &item.Description, &item.Price,
		&item.Category, &item.Image, &item.Popular, &item.CreatedAt,
	)
	if err != nil {
		return domain.MenuItem{}, mapNotFound(err)
	}
	return item, nil
}
