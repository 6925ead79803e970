// Package config reads the application settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/workopia/pkg/db"
	"github.com/dmitrymomot/workopia/pkg/logger"
	"github.com/dmitrymomot/workopia/pkg/redis"
)

// ErrLoad is returned when the environment cannot be read or parsed.
var ErrLoad = errors.New("config: load failed")

// HTTP configures the listener and graceful shutdown.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"2m"`
}

// Session configures the session cookie and store.
type Session struct {
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"__sid"`
	Domain     string        `env:"SESSION_COOKIE_DOMAIN"`
	MaxAge     time.Duration `env:"SESSION_MAX_AGE" envDefault:"168h"`
	Secure     bool          `env:"SESSION_COOKIE_SECURE" envDefault:"true"`
	// Flash messages left unread expire after FlashTTL in Redis.
	FlashTTL    time.Duration `env:"SESSION_FLASH_TTL" envDefault:"24h"`
	RedisPrefix string        `env:"SESSION_REDIS_PREFIX" envDefault:"workopia:session"`
}

// Config is the complete application configuration.
type Config struct {
	HTTP    HTTP
	Session Session
	DB      db.Config
	Redis   redis.Config
	Log     logger.Config

	// ListingsCacheTTL bounds how long the home page listings are
	// cached. Zero disables the cache.
	ListingsCacheTTL time.Duration `env:"LISTINGS_CACHE_TTL" envDefault:"30s"`

	// AutoMigrate applies pending migrations before serving.
	AutoMigrate bool `env:"AUTO_MIGRATE" envDefault:"false"`
}

// Load reads the given dotenv files (".env" when none are named) into the
// process environment without overriding variables that are already
// set, then parses Config. Missing dotenv files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrLoad, f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return cfg, nil
}

// Parse builds Config from vars only, ignoring the process environment.
func Parse(vars map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: vars})
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return cfg, nil
}
