package middleware

import (
	"github.com/gin-gonic/gin"

	"event-calendar/pkg/tz"
)

// Timezone resolves the caller's IANA timezone from the X-Timezone header,
// then the tz cookie, then the configured default, and stores it in the
// request context. Names that do not load are ignored.
func (m Middleware) Timezone() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := m.defaultTimezone
		if h := c.GetHeader(tz.Header); tz.Valid(h) {
			name = h
		} else if ck, err := c.Cookie(tz.CookieName); err == nil && tz.Valid(ck) {
			name = ck
		} else if h != "" {
			m.l.Debugf(c.Request.Context(), "middleware.Timezone: ignoring invalid timezone %q", h)
		}

		c.Request = c.Request.WithContext(tz.WithTimezone(c.Request.Context(), name))
		c.Next()
	}
}
