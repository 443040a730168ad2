package sqlite

import (
	"context"
	"database/sql"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/domain"
)

type clientsRepo struct {
	db *sql.DB
}

const clientColumns = `id, client_id, client_key_hash, email, name, is_active, created_at`

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (`+clientColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.ClientID, c.KeyHash, c.Email, c.Name, c.IsActive, c.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *clientsRepo) GetClientByClientID(ctx context.Context, clientID string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE client_id = ?`,
		clientID,
	)
	return scanClient(row)
}

func (r *clientsRepo) GetClientByEmail(ctx context.Context, email string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		WHERE email = ?`,
		email,
	)
	return scanClient(row)
}

func (r *clientsRepo) ListClients(ctx context.Context) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+clientColumns+`
		FROM clients
		ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *clientsRepo) SetClientActive(ctx context.Context, clientID string, active bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients SET is_active = ? WHERE client_id = ?`,
		active, clientID,
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (domain.Client, error) {
	var c domain.Client
	err := row.Scan(&c.ID, &c.ClientID, &c.KeyHash, &c.Email, &c.Name, &c.IsActive, &c.CreatedAt)
	if err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}
