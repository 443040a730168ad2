package store

import (
	"context"
	"errors"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Clients() Clients
	MenuItems() MenuItems

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Clients interface {
	// CreateClient inserts a new client (id is provided by app via ULID).
	// Returns ErrAlreadyExists when client_id or email collides with an
	// existing row; the unique indexes are the registration re-check.
	CreateClient(ctx context.Context, c domain.Client) error

	// GetClientByClientID resolves the public identifier, used on login and
	// on every authenticated request.
	GetClientByClientID(ctx context.Context, clientID string) (domain.Client, error)

	// GetClientByEmail is used during registration to reject duplicates with
	// a specific validation message.
	GetClientByEmail(ctx context.Context, email string) (domain.Client, error)

	// ListClients returns all clients ordered by creation date (newest first).
	ListClients(ctx context.Context) ([]domain.Client, error)

	// SetClientActive flips the is_active flag. Administrative action; no
	// HTTP surface exposes it.
	SetClientActive(ctx context.Context, clientID string, active bool) error
}

type MenuItems interface {
	// CreateMenuItem inserts an item and returns it with the assigned id.
	CreateMenuItem(ctx context.Context, item domain.MenuItem) (domain.MenuItem, error)

	// GetMenuItem fetches an item by id.
	GetMenuItem(ctx context.Context, id int64) (domain.MenuItem, error)

	// ListMenuItems returns items ordered by id, with offset/limit paging.
	ListMenuItems(ctx context.Context, offset, limit int) ([]domain.MenuItem, error)

	// UpdateMenuItem overwrites the mutable fields of an existing item.
	UpdateMenuItem(ctx context.Context, item domain.MenuItem) error

	// DeleteMenuItem removes an item by id.
	DeleteMenuItem(ctx context.Context, id int64) error
}
