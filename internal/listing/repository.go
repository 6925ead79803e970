package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/workopia/pkg/db"
)

// Store is the persistence API used by the HTTP handlers.
type Store interface {
	List(ctx context.Context) ([]Listing, error)
	Latest(ctx context.Context, limit int) ([]Listing, error)
	Find(ctx context.Context, id int64) (Listing, error)
	Create(ctx context.Context, userID int64, in Input) (int64, error)
	Update(ctx context.Context, id int64, in Input) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, keywords, location string) ([]Listing, error)
}

// Repository implements Store on PostgreSQL.
type Repository struct {
	db db.Querier
}

// NewRepository returns a Repository using q, typically a *pgxpool.Pool.
func NewRepository(q db.Querier) *Repository {
	return &Repository{db: q}
}

// List returns all listings, newest first.
func (r *Repository) List(ctx context.Context) ([]Listing, error) {
	items, err := db.FetchAll[Listing](ctx, r.db, listQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return items, nil
}

// Latest returns at most limit listings, newest first.
func (r *Repository) Latest(ctx context.Context, limit int) ([]Listing, error) {
	items, err := db.FetchAll[Listing](ctx, r.db, latestQuery, pgx.NamedArgs{"limit": max(limit, 0)})
	if err != nil {
		return nil, fmt.Errorf("latest listings: %w", err)
	}
	return items, nil
}

// Find returns ErrNotFound when no listing has the id.
func (r *Repository) Find(ctx context.Context, id int64) (Listing, error) {
	item, err := db.FetchOne[Listing](ctx, r.db, findQuery, pgx.NamedArgs{"id": id})
	if errors.Is(err, db.ErrNotFound) {
		return Listing{}, ErrNotFound
	}
	if err != nil {
		return Listing{}, fmt.Errorf("find listing %d: %w", id, err)
	}
	return item, nil
}

// Create inserts the submitted fields owned by userID and returns the
// new id. The input must already be validated.
func (r *Repository) Create(ctx context.Context, userID int64, in Input) (int64, error) {
	sql, args, err := buildInsert(userID, in)
	if err != nil {
		return 0, err
	}

	id, err := db.FetchScalar[int64](ctx, r.db, sql, args)
	if err != nil {
		return 0, fmt.Errorf("create listing: %w", err)
	}
	return id, nil
}

// Update writes only the submitted fields. Owner and id never change.
func (r *Repository) Update(ctx context.Context, id int64, in Input) error {
	sql, args, err := buildUpdate(id, in)
	if err != nil {
		return err
	}

	n, err := db.Exec(ctx, r.db, sql, args)
	if err != nil {
		return fmt.Errorf("update listing %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	n, err := db.Exec(ctx, r.db, deleteQuery, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("delete listing %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Search matches keywords against title, description, tags and company
// and location against city and state, case-insensitively. Empty terms
// match everything.
func (r *Repository) Search(ctx context.Context, keywords, location string) ([]Listing, error) {
	items, err := db.FetchAll[Listing](ctx, r.db, searchQuery, searchArgs(keywords, location))
	if err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return items, nil
}

var _ Store = (*Repository)(nil)
