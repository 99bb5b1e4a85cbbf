package engine

import (
	"log/slog"

	"github.com/sirkon/fieldguard/internal/locate"
)

// Option configures an Engine.
type Option func(e *Engine)

// WithWorkers limits files evaluated in parallel by Run. Values below 1 keep
// the default of GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithWriteMode sets statements Run treats as writes.
func WithWriteMode(m locate.WriteMode) Option {
	return func(e *Engine) {
		e.writes = m
	}
}

// WithGenerated makes the engine check generated files too.
func WithGenerated(include bool) Option {
	return func(e *Engine) {
		e.generated = include
	}
}

// WithLogger sets the logger. Nil keeps the discarding one.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}
