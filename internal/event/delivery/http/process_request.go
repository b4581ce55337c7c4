package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"event-calendar/internal/event"
	"event-calendar/internal/event/validation"
	pkgErrors "event-calendar/pkg/errors"
)

// processListReq binds the calendar page query.
func (h *handler) processListReq(c *gin.Context) listReq {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Debugf(c.Request.Context(), "http.processListReq: %v", err)
	}
	return req
}

// processEventFormReq binds a posted event form and its view token.
func (h *handler) processEventFormReq(c *gin.Context) (eventFormReq, error) {
	var req eventFormReq
	if err := c.ShouldBind(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

// processDetailReq reads the event id from the path and the view token from the form.
func (h *handler) processDetailReq(c *gin.Context) (event.DetailInput, error) {
	id, err := parseID(c)
	if err != nil {
		return event.DetailInput{}, err
	}
	return event.DetailInput{ID: id, Token: c.PostForm(viewParam)}, nil
}

// processValidateReq binds a JSON form snapshot and the optional field query.
func (h *handler) processValidateReq(c *gin.Context) (validateReq, error) {
	var req validateReq
	if err := c.ShouldBindJSON(&req.Form); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	req.Field = c.Query("field")
	return req, req.validate()
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, event.ErrInvalidID
	}
	return id, nil
}

func knownField(field string) bool {
	switch field {
	case validation.FieldTitle, validation.FieldDescription, validation.FieldStartDateTime,
		validation.FieldEndDateTime, validation.FieldLocation:
		return true
	}
	return false
}
