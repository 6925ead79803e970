package middlewares

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/workopia/internal/web"
)

// MethodOverrideField is the hidden form field HTML forms use to send
// PUT, PATCH or DELETE.
const MethodOverrideField = "_method"

// MethodOverride rewrites a POST to the method named in the _method form
// field or the X-HTTP-Method-Override header. It must run before routing,
// so register it globally with web.WithMiddleware.
func MethodOverride() web.Middleware {
	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) error {
			r := c.Request()
			if r.Method != http.MethodPost {
				return next(c)
			}

			m := c.Header("X-HTTP-Method-Override")
			if m == "" {
				m = c.Form(MethodOverrideField)
			}

			switch m = strings.ToUpper(strings.TrimSpace(m)); m {
			case http.MethodPut, http.MethodPatch, http.MethodDelete:
				r.Method = m
			}
			return next(c)
		}
	}
}
