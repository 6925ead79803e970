package listing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsert(t *testing.T) {
	t.Parallel()

	in := Input{
		"title":       "Go Developer",
		"description": "Build services",
		"salary":      "90,000",
		"city":        "Boston",
		"state":       "MA",
		"email":       "jobs@example.com",
		"company":     "",
	}

	sql, args, err := buildInsert(42, in)
	require.NoError(t, err)

	wantSQL := "INSERT INTO listings (user_id, title, description, salary, company, city, state, email) " +
		"VALUES (@user_id, @title, @description, @salary::text::numeric, @company, @city, @state, @email) RETURNING id"
	assert.Equal(t, wantSQL, sql)

	wantArgs := pgx.NamedArgs{
		"user_id":     int64(42),
		"title":       "Go Developer",
		"description": "Build services",
		"salary":      "90000",
		"company":     nil,
		"city":        "Boston",
		"state":       "MA",
		"email":       "jobs@example.com",
	}
	if diff := cmp.Diff(wantArgs, args); diff != "" {
		t.Errorf("buildInsert() args mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildUpdate(t *testing.T) {
	t.Parallel()

	sql, args, err := buildUpdate(7, Input{
		"title":    "Senior Go Developer",
		"benefits": "  ",
	})
	require.NoError(t, err)

	assert.Equal(t, "UPDATE listings SET title = @title, benefits = @benefits WHERE id = @id", sql)
	if diff := cmp.Diff(pgx.NamedArgs{"id": int64(7), "title": "Senior Go Developer", "benefits": nil}, args); diff != "" {
		t.Errorf("buildUpdate() args mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_NoFields(t *testing.T) {
	t.Parallel()

	_, _, err := buildInsert(1, Input{})
	require.ErrorIs(t, err, ErrNoFields)

	_, _, err = buildUpdate(1, nil)
	require.ErrorIs(t, err, ErrNoFields)
}

func TestSearchArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		keywords, location string
		want               pgx.NamedArgs
	}{
		{
			name:     "plain terms",
			keywords: " developer ",
			location: "Boston",
			want:     pgx.NamedArgs{"keywords": "%developer%", "location": "%Boston%"},
		},
		{
			name: "empty terms match everything",
			want: pgx.NamedArgs{"keywords": "%%", "location": "%%"},
		},
		{
			name:     "like metacharacters are escaped",
			keywords: `100%_sure\`,
			location: "_",
			want:     pgx.NamedArgs{"keywords": `%100\%\_sure\\%`, "location": `%\_%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, searchArgs(tt.keywords, tt.location)); diff != "" {
				t.Errorf("searchArgs() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchQuery_Columns(t *testing.T) {
	t.Parallel()

	assert.Contains(t, searchQuery, "(title ILIKE @keywords OR description ILIKE @keywords OR tags ILIKE @keywords OR company ILIKE @keywords)")
	assert.Contains(t, searchQuery, "AND (city ILIKE @location OR state ILIKE @location)")
}
