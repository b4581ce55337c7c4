package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"event-calendar/internal/event"
	"event-calendar/pkg/log"
)

// Handler is the public interface for the event HTTP delivery layer.
type Handler interface {
	// Pages
	Home(c *gin.Context)
	Calendar(c *gin.Context)
	AddEventPage(c *gin.Context)
	AddEvent(c *gin.Context)
	EventPage(c *gin.Context)
	Edit(c *gin.Context)
	CancelEdit(c *gin.Context)
	Save(c *gin.Context)
	RequestDelete(c *gin.Context)
	ConfirmDelete(c *gin.Context)
	AbortDelete(c *gin.Context)
	Throttled(c *gin.Context)

	// JSON API
	Entries(c *gin.Context)
	Validate(c *gin.Context)
	ExportICS(c *gin.Context)
}

type handler struct {
	l     log.Logger
	uc    event.UseCase
	pages map[string]*template.Template
}

// New creates a new HTTP handler for the event domain.
func New(l log.Logger, uc event.UseCase) (Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &handler{
		l:     l,
		uc:    uc,
		pages: pages,
	}, nil
}
