// Package logging holds zerolog helpers shared across confusion.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// WithContextHook returns l with ContextHook attached, so events logged with
// .Ctx(ctx) carry request and dish ids.
func WithContextHook(l zerolog.Logger) zerolog.Logger {
	return l.Hook(ContextHook{})
}
