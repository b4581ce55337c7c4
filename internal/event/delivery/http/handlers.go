package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"event-calendar/internal/event"
	"event-calendar/pkg/response"
)

const (
	msgInFlight    = "A submission is already in progress"
	msgInvalidForm = "Invalid form submission"
	msgThrottled   = "Too many submissions, please wait a moment and retry"
)

// Home sends the user agent to the calendar.
func (h *handler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, event.CalendarPath)
}

// Calendar renders the month grid and the event list.
func (h *handler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processListReq(c)
	snap := h.uc.LoadList(ctx, req.toInput())

	h.render(c, http.StatusOK, pageCalendar, h.newCalendarPage(snap, h.location(c)))
}

// AddEventPage renders an empty create form.
func (h *handler) AddEventPage(c *gin.Context) {
	snap := h.uc.OpenCreate(c.Request.Context())
	h.render(c, http.StatusOK, pageAddEvent, h.newCreatePage(snap))
}

// AddEvent submits the create form. Success redirects to the calendar;
// anything else re-renders the form with what went wrong.
func (h *handler) AddEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEventFormReq(c)
	if err != nil {
		page := h.newCreatePage(event.CreateSnapshot{State: event.CreateIdle})
		page.Error = msgInvalidForm
		h.render(c, http.StatusBadRequest, pageAddEvent, page)
		return
	}

	snap, err := h.uc.SubmitCreate(ctx, req.toCreateInput())
	if err != nil {
		page := h.newCreatePage(snap)
		page.Notice = msgInFlight
		h.render(c, h.statusOf(err), pageAddEvent, page)
		return
	}
	if snap.Navigate != "" {
		c.Redirect(http.StatusSeeOther, snap.Navigate)
		return
	}

	status := http.StatusOK
	if len(snap.FieldErrors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	h.render(c, status, pageAddEvent, h.newCreatePage(snap))
}

// EventPage renders the detail view behind the view token, opening a new
// one when the token is missing or expired.
func (h *handler) EventPage(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		h.renderNotFound(c)
		return
	}

	snap := h.uc.Detail(ctx, event.DetailInput{ID: id, Token: c.Query(viewParam)})

	status := http.StatusOK
	switch snap.State {
	case event.DetailNotFound:
		status = http.StatusNotFound
	case event.DetailFailed:
		status = http.StatusBadGateway
	}
	h.render(c, status, pageEvent, h.newDetailPage(snap, h.location(c)))
}

func (h *handler) Edit(c *gin.Context) {
	h.detailAction(c, h.uc.Edit)
}

func (h *handler) CancelEdit(c *gin.Context) {
	h.detailAction(c, h.uc.CancelEdit)
}

func (h *handler) Save(c *gin.Context) {
	in, err := h.processDetailReq(c)
	if err != nil {
		h.renderNotFound(c)
		return
	}

	req, err := h.processEventFormReq(c)
	if err != nil {
		h.l.Debugf(c.Request.Context(), "http.Save id=%d: %v", in.ID, err)
		snap := h.uc.Detail(c.Request.Context(), in)
		page := h.newDetailPage(snap, h.location(c))
		page.Notice = msgInvalidForm
		h.render(c, http.StatusBadRequest, pageEvent, page)
		return
	}
	h.detailAction(c, func(ctx context.Context, in event.DetailInput) (event.DetailSnapshot, error) {
		return h.uc.Save(ctx, req.toSaveInput(in.ID))
	})
}

func (h *handler) RequestDelete(c *gin.Context) {
	h.detailAction(c, h.uc.RequestDelete)
}

func (h *handler) ConfirmDelete(c *gin.Context) {
	h.detailAction(c, h.uc.ConfirmDelete)
}

func (h *handler) AbortDelete(c *gin.Context) {
	h.detailAction(c, h.uc.AbortDelete)
}

// detailAction runs one detail transition and redirects (POST-redirect-GET)
// to the view, or to wherever the view asks to navigate.
func (h *handler) detailAction(c *gin.Context, action func(context.Context, event.DetailInput) (event.DetailSnapshot, error)) {
	ctx := c.Request.Context()

	in, err := h.processDetailReq(c)
	if err != nil {
		h.renderNotFound(c)
		return
	}

	snap, err := action(ctx, in)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrViewNotFound), errors.Is(err, event.ErrInvalidTransition):
			h.l.Debugf(ctx, "http.detailAction id=%d: %v", in.ID, err)
			c.Redirect(http.StatusSeeOther, detailURL(snap.ID, snap.Token))
		case errors.Is(err, event.ErrInvalidID):
			h.renderNotFound(c)
		default:
			page := h.newDetailPage(snap, h.location(c))
			page.Notice = msgInFlight
			h.render(c, h.statusOf(err), pageEvent, page)
		}
		return
	}

	if snap.Navigate != "" {
		c.Redirect(http.StatusSeeOther, snap.Navigate)
		return
	}
	c.Redirect(http.StatusSeeOther, detailURL(snap.ID, snap.Token))
}

// Throttled answers a rate-limited form post with the page it came from,
// keeping what the user typed.
func (h *handler) Throttled(c *gin.Context) {
	ctx := c.Request.Context()

	var req eventFormReq
	bound := c.ShouldBind(&req) == nil

	if c.Param("id") == "" {
		page := h.newCreatePage(event.CreateSnapshot{Token: req.View, State: event.CreateIdle, Form: req.form()})
		page.Notice = msgThrottled
		h.render(c, http.StatusTooManyRequests, pageAddEvent, page)
		return
	}

	id, err := parseID(c)
	if err != nil {
		h.renderNotFound(c)
		return
	}
	snap := h.uc.Detail(ctx, event.DetailInput{ID: id, Token: c.PostForm(viewParam)})
	page := h.newDetailPage(snap, h.location(c))
	if bound && snap.State == event.DetailEditing {
		page.Form.Values = req.form()
	}
	page.Notice = msgThrottled
	h.render(c, http.StatusTooManyRequests, pageEvent, page)
}

func (h *handler) renderNotFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, pageEvent, h.newDetailPage(event.DetailSnapshot{
		State: event.DetailNotFound,
		Error: "Event not found",
	}, h.location(c)))
}

// Entries godoc
// @Summary     List calendar entries
// @Description Returns every event projected into calendar entries, in backend order.
// @Tags        Events
// @Produce     json
// @Param       X-Timezone header string false "IANA timezone of the caller"
// @Success     200 {object} response.Resp{data=[]model.CalendarEntry}
// @Failure     502 {object} response.Resp "Backend failure"
// @Router      /api/v1/calendar/entries [GET]
func (h *handler) Entries(c *gin.Context) {
	ctx := c.Request.Context()

	entries, err := h.uc.CalendarEntries(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CalendarEntries: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, entries)
}

// Validate godoc
// @Summary     Validate an event form
// @Description Validates a form snapshot. With field set, only that field and the fields depending on it are reported.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       field query string false "Field that changed (title, description, startDateTime, endDateTime, location)"
// @Param       body  body  model.EventForm true "Form snapshot"
// @Success     200 {object} response.Resp{data=validateResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp{errors=map[string]string} "Validation failed"
// @Router      /api/v1/events/validate [POST]
func (h *handler) Validate(c *gin.Context) {
	req, err := h.processValidateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if errs := h.uc.Validate(req.toInput()); len(errs) > 0 {
		response.ValidationError(c, errs.ByField())
		return
	}

	response.OK(c, validateResp{Valid: true})
}

// ExportICS godoc
// @Summary     Export events as iCalendar
// @Description Returns every event as a VCALENDAR feed. Naive times are read in the caller's timezone.
// @Tags        Events
// @Produce     text/calendar
// @Param       X-Timezone header string false "IANA timezone of the caller"
// @Success     200 {string} string "iCalendar feed"
// @Failure     502 {object} response.Resp "Backend failure"
// @Router      /calendar.ics [GET]
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.ExportICS(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="events.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(out))
}
