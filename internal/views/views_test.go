package views_test

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/workopia/internal/listing"
	"github.com/dmitrymomot/workopia/internal/views"
	"github.com/dmitrymomot/workopia/pkg/session"
	"github.com/dmitrymomot/workopia/pkg/validator"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func ptr(s string) *string { return &s }

func sample() listing.Listing {
	return listing.Listing{
		ID:           7,
		UserID:       1,
		Title:        "Go <Developer>",
		Description:  "Build **services** <script>alert(1)</script>",
		Salary:       "85000.00",
		City:         "Boston",
		State:        "MA",
		Email:        "jobs@example.com",
		Tags:         ptr("go, postgres"),
		Requirements: ptr("- Go\n- SQL"),
	}
}

func TestFlashMessages(t *testing.T) {
	t.Parallel()

	assert.Empty(t, render(t, views.FlashMessages("", "")))

	out := render(t, views.FlashMessages("Listing created successfully", "<b>nope</b>"))
	assert.Contains(t, out, `<div class="message bg-green-100" role="status">Listing created successfully</div>`)
	assert.Contains(t, out, "&lt;b&gt;nope&lt;/b&gt;")
	assert.Less(t, strings.Index(out, "bg-green-100"), strings.Index(out, "bg-red-100"), "success renders first")
}

func TestLayout(t *testing.T) {
	t.Parallel()

	anon := render(t, views.ErrorPage(views.Page{}, 404, "Listing not found"))
	assert.Contains(t, anon, "<title>Error | Workopia</title>")
	assert.Contains(t, anon, `href="/auth/login"`)
	assert.Contains(t, anon, "<h2>404</h2><p>Listing not found</p>")
	assert.NotContains(t, anon, "Post a Job")

	signedIn := render(t, views.ErrorPage(views.Page{User: &session.User{ID: 1, Name: "Jane"}, Success: "done"}, 500, "oops"))
	assert.Contains(t, signedIn, "Welcome Jane")
	assert.Contains(t, signedIn, "Post a Job")
	assert.Contains(t, signedIn, "done")
}

func TestListingsIndex(t *testing.T) {
	t.Parallel()

	out := render(t, views.ListingsIndex(views.Page{}, []listing.Listing{sample()}, "", ""))
	assert.Contains(t, out, "All Jobs")
	assert.Contains(t, out, "Go &lt;Developer&gt;")
	assert.Contains(t, out, "$85,000")
	assert.Contains(t, out, "Boston, MA")
	assert.Contains(t, out, `<span class="tag">postgres</span>`)
	assert.Contains(t, out, `href="/listings/7"`)
	assert.Contains(t, out, `id="`+views.ResultsID+`"`)

	out = render(t, views.ListingsIndex(views.Page{}, nil, "go \"dev\"", "Boston"))
	assert.Contains(t, out, "Search Results for: go &#34;dev&#34; in Boston")
	assert.Contains(t, out, `name="keywords" placeholder="Keywords" value="go &#34;dev&#34;"`)
	assert.Contains(t, out, `name="location" placeholder="Location" value="Boston"`)
	assert.Contains(t, out, "No listings found")
}

func TestListingShow(t *testing.T) {
	t.Parallel()

	out := render(t, views.ListingShow(views.Page{}, sample(), false))
	assert.Contains(t, out, "<strong>services</strong>")
	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "<li>Go</li>")
	assert.Contains(t, out, "mailto:jobs@example.com")
	assert.NotContains(t, out, `value="DELETE"`)
	assert.NotContains(t, out, "/listings/edit/7")

	owner := render(t, views.ListingShow(views.Page{}, sample(), true))
	assert.Contains(t, owner, `href="/listings/edit/7"`)
	assert.Contains(t, owner, `<form method="POST" action="/listings/7"`)
	assert.Contains(t, owner, `<input type="hidden" name="_method" value="DELETE">`)
}

func TestListingForms(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add("title", "Title is required")

	create := render(t, views.ListingCreate(views.Page{}, map[string]string{"city": `Bo"ston`}, errs))
	assert.Contains(t, create, `<form class="listing" method="POST" action="/listings">`)
	assert.NotContains(t, create, `name="_method"`)
	assert.Contains(t, create, `<li>Title is required</li>`)
	assert.Contains(t, create, `<p class="field-error">Title is required</p>`)
	assert.Contains(t, create, `value="Bo&#34;ston"`)
	for _, f := range listing.Fields {
		assert.Contains(t, create, `name="`+f.Name+`"`)
	}
	assert.Contains(t, create, `<textarea id="description" name="description" rows="4" required>`)
	assert.Contains(t, create, `<input id="email" name="email" type="email" required value="">`)

	edit := render(t, views.ListingEdit(views.Page{}, 7, sample().Values(), nil))
	assert.Contains(t, edit, `action="/listings/7"`)
	assert.Contains(t, edit, `<input type="hidden" name="_method" value="PUT">`)
	assert.Contains(t, edit, `value="85000.00"`)
	assert.NotContains(t, edit, "field-error")
}

func TestHome(t *testing.T) {
	t.Parallel()

	out := render(t, views.Home(views.Page{}, []listing.Listing{sample()}))
	assert.Contains(t, out, "Recent Jobs")
	assert.Contains(t, out, "Show All Jobs")
	assert.Contains(t, out, `action="/listings/search"`)
}

func TestFormatSalary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$85,000", views.FormatSalary("85000.00"))
	assert.Equal(t, "$1,250,000.50", views.FormatSalary("1250000.50"))
	assert.Equal(t, "$900", views.FormatSalary("900"))
	assert.Equal(t, "negotiable", views.FormatSalary("negotiable"))
}

func TestExcerpt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", views.Excerpt(" short ", 10))
	assert.Equal(t, "build great...", views.Excerpt("build great services", 14))
}

func TestStatic(t *testing.T) {
	t.Parallel()

	_, err := fs.Stat(views.Static(), "css/style.css")
	require.NoError(t, err)
}
