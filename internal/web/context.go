package web

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/workopia/pkg/htmx"
	"github.com/dmitrymomot/workopia/pkg/session"
)

// Context gives handlers access to the request, the response and the
// visitor's session. It also implements context.Context by delegating to
// the request's context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the wrapped http.ResponseWriter.
	Response() http.ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns a URL path parameter, or "".
	Param(name string) string

	// Query returns a query string parameter, or "".
	Query(name string) string

	// Form returns a form value from the body or the query string.
	Form(name string) string

	// FormValues returns the parsed form body and query values.
	FormValues() (url.Values, error)

	Header(name string) string
	SetHeader(name, value string)

	// Redirect sends a redirect with the given status. htmx requests
	// get an HX-Redirect header instead.
	Redirect(code int, url string) error

	// IsHTMX reports whether the request was issued by htmx.
	IsHTMX() bool

	// Render writes component as HTML with the given status.
	Render(code int, component Component) error

	// RenderPartial renders partial for htmx fragment requests and
	// fullPage otherwise.
	RenderPartial(code int, fullPage, partial Component) error

	// String writes a plain text response.
	String(code int, s string) error

	// NoContent writes only the status.
	NoContent(code int) error

	// Error builds an *HTTPError for returning from a handler.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written reports whether the response header was sent.
	Written() bool

	Logger() *slog.Logger
	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogWarn(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Set stores a request-scoped value; Get and Context().Value read it.
	Set(key, value any)
	Get(key any) any

	// Session returns the visitor's session, or nil if there is none.
	// Returns session.ErrNotConfigured if the app has no session store.
	Session() (*session.Session, error)

	// InitSession starts a new anonymous session and sets its cookie.
	InitSession() error

	// AuthenticateSession stores user in the session, creating one if
	// needed, and rotates the session token.
	AuthenticateSession(user session.User) error

	// User returns the authenticated session user, or nil.
	User() *session.User

	// IsAuthenticated reports whether a session user is present.
	IsAuthenticated() bool

	// SessionValue returns an ordinary session value.
	SessionValue(key string) (any, bool)

	// SetSessionValue stores an ordinary session value, creating the
	// session if needed.
	SetSessionValue(key string, val any) error

	// HasSessionValue reports whether key is set in the session.
	HasSessionValue(key string) bool

	// SetFlash stores a one-shot message, creating the session if needed.
	SetFlash(key, message string) error

	// Flash returns the pending message for key and removes it.
	// It returns "" when there is none.
	Flash(key string) string

	// DestroySession deletes the session and expires its cookie.
	DestroySession() error
}

type contextKey struct{}

// requestContext is created once per request and shared by every
// middleware and the final handler.
type requestContext struct {
	request        *http.Request
	response       *ResponseWriter
	logger         *slog.Logger
	sessionManager *SessionManager
	session        *session.Session

	sessionLoaded         bool
	sessionHookRegistered bool
}

func newContext(w http.ResponseWriter, r *http.Request, a *App) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w)
	}

	c := &requestContext{
		response:       rw,
		logger:         a.logger,
		sessionManager: a.sessionManager,
	}
	c.request = r.WithContext(context.WithValue(r.Context(), contextKey{}, c))
	return c
}

// contextFrom returns the request's shared context, creating it when the
// request did not pass through the app's root middleware.
func (a *App) contextFrom(w http.ResponseWriter, r *http.Request) *requestContext {
	if c, ok := r.Context().Value(contextKey{}).(*requestContext); ok {
		c.request = r
		return c
	}
	return newContext(w, r, a)
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.response
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) Form(name string) string {
	return c.request.FormValue(name)
}

func (c *requestContext) FormValues() (url.Values, error) {
	if err := c.request.ParseForm(); err != nil {
		return nil, err
	}
	return c.request.Form, nil
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) Redirect(code int, url string) error {
	if code < 300 || code > 399 {
		code = http.StatusSeeOther
	}
	htmx.RedirectWithStatus(c.response, c.request, url, code)
	return nil
}

func (c *requestContext) IsHTMX() bool {
	return htmx.IsHTMX(c.request)
}

func (c *requestContext) Render(code int, component Component) error {
	c.response.Header().Set("Content-Type", "text/html; charset=utf-8")
	c.response.WriteHeader(code)
	return component.Render(c.request.Context(), c.response)
}

func (c *requestContext) RenderPartial(code int, fullPage, partial Component) error {
	if htmx.IsPartial(c.request) {
		return c.Render(code, partial)
	}
	return c.Render(code, fullPage)
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return NewHTTPError(code, message, opts...)
}

func (c *requestContext) Written() bool {
	return c.response.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}
