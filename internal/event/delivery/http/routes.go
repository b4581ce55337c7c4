package http

import (
	"github.com/gin-gonic/gin"

	"event-calendar/internal/middleware"
)

// RegisterRoutes maps the user-agent pages onto r and the JSON API onto api.
// Mutating form posts go through the rate limiter, which answers with the
// page rather than JSON.
func RegisterRoutes(r *gin.Engine, api *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.GET("/", h.Home)
	r.GET("/calendar", h.Calendar)
	r.GET("/calendar.ics", h.ExportICS)
	r.GET("/add-event", h.AddEventPage)
	r.POST("/add-event", mw.RateLimit(h.Throttled), h.AddEvent)

	ev := r.Group("/event/:id")
	{
		ev.GET("", h.EventPage)
		ev.POST("/edit", h.Edit)
		ev.POST("/cancel", h.CancelEdit)
		ev.POST("/save", mw.RateLimit(h.Throttled), h.Save)
		ev.POST("/delete", h.RequestDelete)
		ev.POST("/delete/confirm", mw.RateLimit(h.Throttled), h.ConfirmDelete)
		ev.POST("/delete/abort", h.AbortDelete)
	}

	api.GET("/calendar/entries", h.Entries)
	api.POST("/events/validate", h.Validate)
}
