package model

import "strings"

// EventForm is the raw form snapshot as typed by the user. It is what gets
// validated, and what gets re-rendered when a submission fails.
type EventForm struct {
	Title         string `json:"title"         form:"title"         validate:"required,notblank,max=255"`
	Description   string `json:"description"   form:"description"   validate:"max=5000"`
	StartDateTime string `json:"startDateTime" form:"startDateTime" validate:"required,event_datetime"`
	EndDateTime   string `json:"endDateTime"   form:"endDateTime"   validate:"required,event_datetime"`
	Location      string `json:"location"      form:"location"      validate:"location_max"`
}

// NewEventForm fills a form from a stored event.
func NewEventForm(e Event) EventForm {
	return EventForm{
		Title:         e.Title,
		Description:   StringValue(e.Description),
		StartDateTime: e.StartDateTime,
		EndDateTime:   e.EndDateTime,
		Location:      StringValue(e.Location),
	}
}

// Request converts the form into the payload sent to the backend. Blank
// optional fields are omitted rather than sent as "".
func (f EventForm) Request() EventRequest {
	return EventRequest{
		Title:         f.Title,
		Description:   StringPtr(strings.TrimSpace(f.Description)),
		StartDateTime: f.StartDateTime,
		EndDateTime:   f.EndDateTime,
		Location:      StringPtr(strings.TrimSpace(f.Location)),
	}
}
