package middlewares

import (
	"runtime"

	"github.com/dmitrymomot/workopia/internal/web"
)

// DefaultStackSize caps the captured stack trace.
const DefaultStackSize = 4096

type recoverConfig struct {
	stackSize    int
	disableStack bool
}

// RecoverOption configures Recover.
type RecoverOption func(*recoverConfig)

func WithRecoverStackSize(size int) RecoverOption {
	return func(cfg *recoverConfig) {
		if size > 0 {
			cfg.stackSize = size
		}
	}
}

func WithRecoverDisableStack() RecoverOption {
	return func(cfg *recoverConfig) {
		cfg.disableStack = true
	}
}

// Recover turns a panic into a *PanicError for the app's error handler.
func Recover(opts ...RecoverOption) web.Middleware {
	cfg := &recoverConfig{stackSize: DefaultStackSize}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next web.HandlerFunc) web.HandlerFunc {
		return func(c web.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				var stack []byte
				if !cfg.disableStack {
					stack = make([]byte, cfg.stackSize)
					stack = stack[:runtime.Stack(stack, false)]
					c.LogError("panic recovered", "panic", r, "stack", string(stack))
				} else {
					c.LogError("panic recovered", "panic", r)
				}

				err = &PanicError{Value: r, Stack: stack}
			}()

			return next(c)
		}
	}
}
