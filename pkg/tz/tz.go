package tz

import (
	"context"
	"time"
)

// Header is the request header carrying the caller's IANA timezone.
const Header = "X-Timezone"

// CookieName is the cookie the page script stores the browser timezone in.
const CookieName = "tz"

type ctxKey struct{}

// WithTimezone stores an IANA timezone name in ctx.
func WithTimezone(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ctxKey{}, name)
}

// FromContext returns the timezone stored in ctx, or fallback when absent.
func FromContext(ctx context.Context, fallback string) string {
	if ctx != nil {
		if name, ok := ctx.Value(ctxKey{}).(string); ok && name != "" {
			return name
		}
	}
	return fallback
}

// Valid reports whether name is a loadable IANA timezone. "Local" is rejected
// since it means nothing to the backend.
func Valid(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}
