package listing

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

const selectColumns = `id, user_id, title, description, salary::text AS salary, tags, company,
	address, city, state, phone, email, requirements, benefits, created_at`

var (
	listQuery   = "SELECT " + selectColumns + " FROM listings ORDER BY created_at DESC, id DESC"
	latestQuery = "SELECT " + selectColumns + " FROM listings ORDER BY created_at DESC, id DESC LIMIT @limit"
	findQuery   = "SELECT " + selectColumns + " FROM listings WHERE id = @id"
	deleteQuery = "DELETE FROM listings WHERE id = @id"
	searchQuery = "SELECT " + selectColumns + ` FROM listings
	WHERE (title ILIKE @keywords OR description ILIKE @keywords OR tags ILIKE @keywords OR company ILIKE @keywords)
	  AND (city ILIKE @location OR state ILIKE @location)
	ORDER BY created_at DESC, id DESC`
)

// placeholder returns the bound parameter for a whitelisted column.
// NUMERIC columns receive text and cast it server side.
func placeholder(column string) string {
	if f, ok := LookupField(column); ok && f.Numeric {
		return "@" + column + "::text::numeric"
	}
	return "@" + column
}

// buildInsert returns an INSERT covering user_id and the submitted
// whitelisted fields.
func buildInsert(userID int64, in Input) (string, pgx.NamedArgs, error) {
	columns, values := in.args()
	if len(columns) == 0 {
		return "", nil, ErrNoFields
	}

	params := make([]string, len(columns))
	for i, col := range columns {
		params[i] = placeholder(col)
	}

	args := pgx.NamedArgs(values)
	args["user_id"] = userID

	sql := "INSERT INTO listings (user_id, " + strings.Join(columns, ", ") + ") " +
		"VALUES (@user_id, " + strings.Join(params, ", ") + ") RETURNING id"
	return sql, args, nil
}

// buildUpdate returns an UPDATE setting only the submitted whitelisted
// fields of row id.
func buildUpdate(id int64, in Input) (string, pgx.NamedArgs, error) {
	columns, values := in.args()
	if len(columns) == 0 {
		return "", nil, ErrNoFields
	}

	sets := make([]string, len(columns))
	for i, col := range columns {
		sets[i] = col + " = " + placeholder(col)
	}

	args := pgx.NamedArgs(values)
	args["id"] = id

	return "UPDATE listings SET " + strings.Join(sets, ", ") + " WHERE id = @id", args, nil
}

// searchArgs wraps both terms in % for substring matching. LIKE
// metacharacters typed by the user match literally.
func searchArgs(keywords, location string) pgx.NamedArgs {
	return pgx.NamedArgs{
		"keywords": "%" + escapeLike(strings.TrimSpace(keywords)) + "%",
		"location": "%" + escapeLike(strings.TrimSpace(location)) + "%",
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
