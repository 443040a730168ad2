// Package sqlite implements the store interfaces on modernc.org/sqlite.
// Queries are written by hand; the schema lives in embedded migrations.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/d3r-restaurant/menu-api/internal/menuapi/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Clients() store.Clients     { return &clientsRepo{db: s.db} }
func (s *Store) MenuItems() store.MenuItems { return &menuItemsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns unique-index violations into store.ErrAlreadyExists.
// modernc.org/sqlite surfaces them as generic errors, so we match the
// constraint message.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}
