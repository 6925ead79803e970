// Package web is the HTTP shell of the application: a chi router behind
// a small handler API, a per-request Context with session and flash
// helpers, and a graceful server runtime.
package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/workopia/pkg/health"
	"github.com/dmitrymomot/workopia/pkg/session"
)

const (
	defaultLivenessPath  = "/health/live"
	defaultReadinessPath = "/health/ready"
)

// App wires middleware, handlers and the session manager into a chi
// router. It is immutable after New.
type App struct {
	router                  chi.Router
	logger                  *slog.Logger
	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc
	sessionManager          *SessionManager
	healthChecks            health.Checks
	staticRoutes            map[string]http.Handler
	middlewares             []Middleware
	handlers                []Handler
	withHealth              bool
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMiddleware appends global middleware. It runs for every request,
// including not-found and method-not-allowed responses.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers route handlers.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithErrorHandler sets the handler for errors returned from handlers.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithSession enables cookie sessions backed by store.
func WithSession(store session.Store, opts ...SessionOption) Option {
	return func(a *App) {
		if store != nil {
			a.sessionManager = NewSessionManager(store, opts...)
		}
	}
}

// WithHealthChecks registers /health/live and /health/ready. The
// readiness probe runs checks concurrently.
func WithHealthChecks(checks health.Checks) Option {
	return func(a *App) {
		a.withHealth = true
		if a.healthChecks == nil {
			a.healthChecks = make(health.Checks, len(checks))
		}
		for name, fn := range checks {
			a.healthChecks[name] = fn
		}
	}
}

// WithStatic serves h under pattern, e.g. an http.FileServer for assets.
func WithStatic(pattern string, h http.Handler) Option {
	return func(a *App) {
		if a.staticRoutes == nil {
			a.staticRoutes = make(map[string]http.Handler)
		}
		a.staticRoutes[pattern] = h
	}
}

// New builds an App from opts.
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.sessionManager != nil {
		a.sessionManager.setLogger(a.logger)
	}

	a.setupRoutes()
	return a
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Router exposes the underlying chi router.
func (a *App) Router() chi.Router {
	return a.router
}

// SessionManager returns nil when sessions are not configured.
func (a *App) SessionManager() *SessionManager {
	return a.sessionManager
}

func (a *App) setupRoutes() {
	a.router.Use(a.bindContext)
	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	if a.notFoundHandler != nil {
		a.router.NotFound(a.adaptHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.adaptHandler(a.methodNotAllowedHandler))
	}

	for pattern, h := range a.staticRoutes {
		a.router.Mount(pattern, h)
	}

	if a.withHealth {
		a.router.Get(defaultLivenessPath, health.LivenessHandler())
		a.router.Get(defaultReadinessPath, health.ReadinessHandler(a.healthChecks, health.WithLogger(a.logger)))
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// bindContext attaches the shared per-request Context.
func (a *App) bindContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		next.ServeHTTP(c.response, c.request)
	})
}

func (a *App) handleError(c Context, err error) {
	if c.Written() {
		c.LogError("handler error after response was written", slog.String("error", err.Error()))
		return
	}
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr != nil {
			c.LogError("error handler failed", slog.String("error", herr.Error()))
		}
		return
	}

	code := http.StatusInternalServerError
	if he := AsHTTPError(err); he != nil {
		code = he.StatusCode()
	}
	http.Error(c.Response(), http.StatusText(code), code)
}
