package middlewares

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/workopia/internal/web"
	"github.com/dmitrymomot/workopia/pkg/logger"
)

// Role names accepted by Authorize.
const (
	RoleAuth  = "auth"
	RoleGuest = "guest"
)

// Redirect targets used by Authorize.
var (
	LoginPath = "/auth/login"
	HomePath  = "/"
)

// Authorize gates a route by visitor state. RoleAuth sends anonymous
// visitors to LoginPath; RoleGuest sends signed-in users to HomePath.
// Any other role lets every request through.
func Authorize(role string) web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			switch authed := c.IsAuthenticated(); {
			case role == RoleAuth && !authed:
				return c.Redirect(http.StatusSeeOther, LoginPath)
			case role == RoleGuest && authed:
				return c.Redirect(http.StatusSeeOther, HomePath)
			}
			return next(c)
		}
	}
}

type userIDKey struct{}

// CurrentUser records the session user's id on the request context so
// UserIDExtractor can add it to log records.
func CurrentUser() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			if u := c.User(); u != nil {
				c.Set(userIDKey{}, u.ID)
			}
			return next(c)
		}
	}
}

// UserIDExtractor adds "user_id" to log records.
func UserIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := ctx.Value(userIDKey{}).(int64); ok {
			return slog.Int64("user_id", id), true
		}
		return slog.Attr{}, false
	}
}
