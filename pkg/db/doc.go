// Package db wraps pgx for PostgreSQL access.
//
// Connect builds a pgxpool with startup retries. Migrate applies goose
// migrations from any fs.FS, usually an embed.FS. FetchOne, FetchAll and
// Exec take SQL with named placeholders (@name) and a pgx.NamedArgs map,
// scanning rows into structs by their `db` tags:
//
//	item, err := db.FetchOne[Listing](ctx, pool,
//		"SELECT id, title FROM listings WHERE id = @id",
//		pgx.NamedArgs{"id": id},
//	)
//	if errors.Is(err, db.ErrNotFound) {
//		// ...
//	}
//
// Driver failures are wrapped with ErrQuery.
package db
