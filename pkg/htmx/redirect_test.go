package htmx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/workopia/pkg/htmx"
)

func TestRedirect(t *testing.T) {
	t.Parallel()

	t.Run("htmx request gets HX-Redirect with 200", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/listings/1", nil)
		req.Header.Set("HX-Request", "true")

		htmx.Redirect(rec, req, "/listings")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/listings", rec.Header().Get("HX-Redirect"))
		assert.Empty(t, rec.Header().Get("Location"))
	})

	t.Run("regular request gets 303", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/listings", nil)

		htmx.Redirect(rec, req, "/listings")

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/listings", rec.Header().Get("Location"))
		assert.Empty(t, rec.Header().Get("HX-Redirect"))
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/old", nil)

		htmx.RedirectWithStatus(rec, req, "/new", http.StatusMovedPermanently)

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/new", rec.Header().Get("Location"))
	})
}
