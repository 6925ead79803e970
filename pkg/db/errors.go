package db

import "errors"

var (
	ErrEmptyURL          = errors.New("db: empty connection URL")
	ErrParseConfig       = errors.New("db: failed to parse database configuration")
	ErrConnect           = errors.New("db: failed to open database connection")
	ErrHealthcheckFailed = errors.New("db: healthcheck failed")
	ErrNotFound          = errors.New("db: no rows in result set")
	ErrQuery             = errors.New("db: query failed")
	ErrSetDialect        = errors.New("db migrator: failed to set dialect")
	ErrApplyMigrations   = errors.New("db migrator: failed to apply migrations")
)
