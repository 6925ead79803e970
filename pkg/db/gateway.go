package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// FetchOne runs query with named arguments and scans the first row into T
// by column name. ErrNotFound is returned when the result is empty.
func FetchOne[T any](ctx context.Context, q Querier, query string, args pgx.NamedArgs) (T, error) {
	var zero T

	rows, err := q.Query(ctx, query, args)
	if err != nil {
		return zero, queryError(err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, queryError(err)
	}

	return item, nil
}

// FetchAll runs query and scans every row into T. An empty result is an
// empty, non-nil slice.
func FetchAll[T any](ctx context.Context, q Querier, query string, args pgx.NamedArgs) ([]T, error) {
	rows, err := q.Query(ctx, query, args)
	if err != nil {
		return nil, queryError(err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, queryError(err)
	}
	if items == nil {
		items = []T{}
	}

	return items, nil
}

// FetchScalar runs query and scans the single column of the first row.
func FetchScalar[T any](ctx context.Context, q Querier, query string, args pgx.NamedArgs) (T, error) {
	var zero T

	rows, err := q.Query(ctx, query, args)
	if err != nil {
		return zero, queryError(err)
	}

	v, err := pgx.CollectOneRow(rows, pgx.RowTo[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, queryError(err)
	}

	return v, nil
}

// Exec runs a statement and returns the number of affected rows.
func Exec(ctx context.Context, q Querier, query string, args pgx.NamedArgs) (int64, error) {
	tag, err := q.Exec(ctx, query, args)
	if err != nil {
		return 0, queryError(err)
	}
	return tag.RowsAffected(), nil
}

func queryError(err error) error {
	return fmt.Errorf("%w: %w", ErrQuery, err)
}
