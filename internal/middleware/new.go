package middleware

import (
	"event-calendar/pkg/log"
)

// Config holds the middleware settings.
type Config struct {
	// DefaultTimezone applies when a request carries no usable timezone hint.
	DefaultTimezone string
	// SubmitPerMin caps mutating form posts per client IP. Zero disables the limit.
	SubmitPerMin int
}

type Middleware struct {
	l               log.Logger
	defaultTimezone string
	limiter         *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:               l,
		defaultTimezone: cfg.DefaultTimezone,
	}
	if cfg.SubmitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.SubmitPerMin)
	}
	return mw
}
