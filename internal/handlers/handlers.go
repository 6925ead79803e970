// Package handlers serves the job listing pages.
package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/workopia/internal/listing"
	"github.com/dmitrymomot/workopia/internal/views"
	"github.com/dmitrymomot/workopia/internal/web"
	"github.com/dmitrymomot/workopia/pkg/session"
)

// page collects the chrome of a full page. It takes the pending flash
// messages, so call it only for a page that will be rendered.
func page(c web.Context, title string) views.Page {
	return views.Page{
		Title:   title,
		User:    c.User(),
		Success: c.Flash(session.FlashSuccess),
		Error:   c.Flash(session.FlashError),
	}
}

// deferred builds the component when it is rendered. RenderPartial only
// renders one of its components, and flashes must not be taken for the
// one that is skipped.
func deferred(build func() templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build().Render(ctx, w)
	})
}

// flash stores a one-shot message. A store failure is logged and the
// request goes on: the change it reports has already happened.
func flash(c web.Context, key, message string) {
	if err := c.SetFlash(key, message); err != nil {
		c.LogWarn("set flash message", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// ErrorHandler renders returned errors as an error page. Missing
// listings become 404, *web.HTTPError keeps its status and message, and
// anything else is logged and shown as a generic 500.
func ErrorHandler(c web.Context, err error) error {
	code := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	if errors.Is(err, listing.ErrNotFound) {
		code, message = http.StatusNotFound, "Listing not found"
	} else if he := web.AsHTTPError(err); he != nil {
		code, message = he.StatusCode(), he.Message
	}

	if code >= http.StatusInternalServerError {
		c.LogError("request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.String("error", err.Error()),
		)
	}

	return c.Render(code, views.ErrorPage(page(c, http.StatusText(code)), code, message))
}

// NotFound renders the 404 page for unknown routes.
func NotFound(c web.Context) error {
	return ErrorHandler(c, web.ErrNotFound("Page not found"))
}

// MethodNotAllowed renders the 405 page.
func MethodNotAllowed(c web.Context) error {
	return ErrorHandler(c, web.ErrMethodNotAllowed("This HTTP method is not allowed for this resource."))
}
