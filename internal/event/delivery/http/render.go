package http

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"event-calendar/pkg/tz"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageCalendar = "calendar.html"
	pageAddEvent = "add_event.html"
	pageEvent    = "event.html"

	layoutTemplate = "layout"
)

var templateFuncs = template.FuncMap{
	"dayNumber": func(t time.Time) int { return t.Day() },
	"isoDate":   func(t time.Time) string { return t.Format("2006-01-02") },
}

// parsePages builds one template set per page, each sharing the layout and
// the event form partial.
func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, 3)
	for _, page := range []string{pageCalendar, pageAddEvent, pageEvent} {
		t, err := template.New(page).Funcs(templateFuncs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/form.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", page, err)
		}
		pages[page] = t
	}
	return pages, nil
}

func (h *handler) render(c *gin.Context, status int, page string, data any) {
	c.Render(status, render.HTML{
		Template: h.pages[page],
		Name:     layoutTemplate,
		Data:     data,
	})
}

// location is the caller's timezone as resolved by the middleware.
func (h *handler) location(c *gin.Context) *time.Location {
	name := tz.FromContext(c.Request.Context(), "UTC")
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
