package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Store persists the favorite relation: one row per
// (user_id, property_id), timestamped at creation. Property records
// themselves come from the upstream pipeline and are not stored here;
// only the association is durable.
type Store struct{ DB *sql.DB }

func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return &Store{DB: db}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }

func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS favorites (
            id          UUID PRIMARY KEY,
            user_id     TEXT NOT NULL,
            property_id TEXT NOT NULL,
            created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
        );`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_favorites_user_property ON favorites(user_id, property_id);`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites(user_id, created_at DESC);`,
	}
	for _, q := range stmts {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// Favorite is one saved listing for a user.
type Favorite struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	PropertyID string    `json:"property_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Add records a favorite. Adding an existing pair is a no-op; the
// unique index plus ON CONFLICT keeps the call idempotent.
func (s *Store) Add(ctx context.Context, userID, propertyID string) error {
	if s == nil || s.DB == nil {
		return errors.New("nil store")
	}
	_, err := s.DB.ExecContext(ctx, `
        INSERT INTO favorites (id, user_id, property_id)
        VALUES ($1, $2, $3)
        ON CONFLICT (user_id, property_id) DO NOTHING`,
		uuid.New(), userID, propertyID,
	)
	return err
}

// Remove deletes a favorite. Removing an absent pair is a no-op.
func (s *Store) Remove(ctx context.Context, userID, propertyID string) error {
	if s == nil || s.DB == nil {
		return errors.New("nil store")
	}
	_, err := s.DB.ExecContext(ctx, `
        DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`,
		userID, propertyID,
	)
	return err
}

// Exists reports whether the pair is currently favorited.
func (s *Store) Exists(ctx context.Context, userID, propertyID string) (bool, error) {
	if s == nil || s.DB == nil {
		return false, errors.New("nil store")
	}
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
        SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND property_id = $2)`,
		userID, propertyID,
	).Scan(&exists)
	return exists, err
}

// List returns a user's favorites, newest first.
func (s *Store) List(ctx context.Context, userID string) ([]Favorite, error) {
	if s == nil || s.DB == nil {
		return nil, errors.New("nil store")
	}
	rows, err := s.DB.QueryContext(ctx, `
        SELECT id, user_id, property_id, created_at
        FROM favorites
        WHERE user_id = $1
        ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.PropertyID, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// ListIDs returns just the property ids, for seeding session state.
func (s *Store) ListIDs(ctx context.Context, userID string) ([]string, error) {
	favs, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.PropertyID)
	}
	return ids, nil
}
