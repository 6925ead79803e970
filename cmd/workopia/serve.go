package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/workopia/internal/config"
	internaldb "github.com/dmitrymomot/workopia/internal/db"
	"github.com/dmitrymomot/workopia/internal/handlers"
	"github.com/dmitrymomot/workopia/internal/listing"
	"github.com/dmitrymomot/workopia/internal/views"
	"github.com/dmitrymomot/workopia/internal/web"
	"github.com/dmitrymomot/workopia/middlewares"
	"github.com/dmitrymomot/workopia/pkg/cache"
	"github.com/dmitrymomot/workopia/pkg/db"
	"github.com/dmitrymomot/workopia/pkg/health"
	"github.com/dmitrymomot/workopia/pkg/logger"
	"github.com/dmitrymomot/workopia/pkg/redis"
	"github.com/dmitrymomot/workopia/pkg/session"
)

func newServeCmd(load func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

// serve connects the backing services and runs the site until a signal
// arrives or ctx is cancelled.
func serve(ctx context.Context, cfg config.Config) error {
	log := logger.New(cfg.Log, middlewares.RequestIDExtractor(), middlewares.UserIDExtractor())

	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		log.Error("database connection failed", slog.String("error", err.Error()))
		return err
	}
	hooks := []func(context.Context) error{db.Shutdown(pool)}
	checks := health.Checks{"postgres": db.Healthcheck(pool)}

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, pool, internaldb.Migrations(), cfg.DB.MigrationsTable, log); err != nil {
			pool.Close()
			return err
		}
	}

	var (
		sessions session.Store
		listings cache.Cache[[]listing.Listing] = cache.NewMemory[[]listing.Listing](cfg.ListingsCacheTTL)
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			pool.Close()
			log.Error("redis connection failed", slog.String("error", err.Error()))
			return err
		}
		sessions = session.NewRedisStore(client,
			session.WithRedisPrefix(cfg.Session.RedisPrefix),
			session.WithFlashTTL(cfg.Session.FlashTTL),
		)
		listings = cache.NewRedis[[]listing.Listing](client, "workopia:cache", cfg.ListingsCacheTTL)
		checks["redis"] = redis.Healthcheck(client)
		hooks = append(hooks, redis.Shutdown(client))
	} else {
		log.Warn("REDIS_URL not set, sessions are kept in memory")
		sessions = session.NewMemoryStore()
	}
	hooks = append(hooks, logger.Shutdown())

	var store listing.Store = listing.NewRepository(pool)
	if cfg.ListingsCacheTTL > 0 {
		store = listing.NewCachedStore(store, listings, cfg.ListingsCacheTTL, listing.WithCacheLogger(log))
	}

	app := newApp(log, cfg, store, sessions, checks)

	opts := []web.RunOption{
		web.WithBaseContext(ctx),
		web.WithShutdownTimeout(cfg.HTTP.ShutdownTimeout),
		web.WithServerTimeouts(cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout, cfg.HTTP.IdleTimeout),
	}
	for _, h := range hooks {
		opts = append(opts, web.WithShutdownHook(h))
	}
	return app.Run(cfg.HTTP.Addr, opts...)
}

// newApp wires the handlers and middleware onto a web.App.
func newApp(log *slog.Logger, cfg config.Config, store listing.Store, sessions session.Store, checks health.Checks) *web.App {
	return web.New(
		web.WithLogger(log),
		web.WithSession(sessions,
			web.WithSessionCookieName(cfg.Session.CookieName),
			web.WithSessionMaxAge(cfg.Session.MaxAge),
			web.WithSessionDomain(cfg.Session.Domain),
			web.WithSessionSecure(cfg.Session.Secure),
		),
		web.WithMiddleware(
			middlewares.Recover(),
			middlewares.RequestID(),
			middlewares.MethodOverride(),
			middlewares.CurrentUser(),
		),
		web.WithErrorHandler(handlers.ErrorHandler),
		web.WithNotFoundHandler(handlers.NotFound),
		web.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		web.WithHealthChecks(checks),
		web.WithStatic("/static", http.StripPrefix("/static", http.FileServerFS(views.Static()))),
		web.WithHandlers(
			handlers.NewHomeHandler(store),
			handlers.NewListingHandler(store),
		),
	)
}
