package http

import (
	"fmt"
	"net/url"
	"time"

	"event-calendar/internal/event"
	"event-calendar/internal/event/calendar"
	"event-calendar/internal/model"
	pkgErrors "event-calendar/pkg/errors"
)

const viewParam = "view"

// --- Request DTOs ---

type listReq struct {
	Month string `form:"month"`
}

func (r listReq) toInput() event.ListInput {
	return event.ListInput{Month: r.Month}
}

// ---

type eventFormReq struct {
	View string `form:"view"`
	model.EventForm
}

// form returns the posted form with datetime-local values widened to seconds.
func (r eventFormReq) form() model.EventForm {
	f := r.EventForm
	f.StartDateTime = model.NormalizeDateTime(f.StartDateTime)
	f.EndDateTime = model.NormalizeDateTime(f.EndDateTime)
	return f
}

func (r eventFormReq) toCreateInput() event.SubmitCreateInput {
	return event.SubmitCreateInput{Token: r.View, Form: r.form()}
}

func (r eventFormReq) toSaveInput(id int64) event.SaveInput {
	return event.SaveInput{
		DetailInput: event.DetailInput{Token: r.View, ID: id},
		Form:        r.form(),
	}
}

// ---

type validateReq struct {
	Form  model.EventForm
	Field string
}

func (r validateReq) validate() error {
	if r.Field != "" && !knownField(r.Field) {
		return pkgErrors.NewHTTPError(400, fmt.Sprintf("unknown field %q", r.Field))
	}
	return nil
}

func (r validateReq) toInput() event.ValidateInput {
	return event.ValidateInput{Form: r.Form, Field: r.Field}
}

// --- Response DTOs ---

type validateResp struct {
	Valid bool `json:"valid"`
}

// --- Page models ---

type basePage struct {
	Title  string
	Notice string
}

type calendarPage struct {
	basePage
	State  event.ListState
	Error  string
	Month  calendar.Month
	Events []eventCard
}

type eventCard struct {
	ID          int64
	Title       string
	When        string
	Description string
	Location    string
	URL         string
}

type formView struct {
	Action      string
	Token       string
	Values      model.EventForm
	Errors      map[string]string
	SubmitLabel string
	Busy        bool
	// CancelURL is a link, CancelAction a form post; one of them is set.
	CancelURL    string
	CancelAction string
}

type createPage struct {
	basePage
	Error   string
	Details []string
	Form    formView
}

type detailPage struct {
	basePage
	ID            int64
	Token         string
	State         event.DetailState
	Error         string
	Details       []string
	Card          *eventCard
	Form          formView
	ConfirmText   string
	ViewURL       string
	ActionPrefix  string
	Busy          bool
	FieldErrCount int
}

func (h *handler) newCalendarPage(snap event.ListSnapshot, loc *time.Location) calendarPage {
	p := calendarPage{
		basePage: basePage{Title: "Event Calendar"},
		State:    snap.State,
		Error:    snap.Error,
		Month:    snap.Month,
		Events:   make([]eventCard, 0, len(snap.Events)),
	}
	for _, e := range snap.Events {
		p.Events = append(p.Events, newEventCard(e, loc))
	}
	return p
}

func (h *handler) newCreatePage(snap event.CreateSnapshot) createPage {
	return createPage{
		basePage: basePage{Title: "Add New Event"},
		Error:    snap.Error,
		Details:  snap.Details,
		Form: formView{
			Action:      "/add-event",
			Token:       snap.Token,
			Values:      snap.Form,
			Errors:      snap.FieldErrors.ByField(),
			SubmitLabel: "Create Event",
			Busy:        snap.State == event.CreateSubmitting,
			CancelURL:   event.CalendarPath,
		},
	}
}

func (h *handler) newDetailPage(snap event.DetailSnapshot, loc *time.Location) detailPage {
	prefix := fmt.Sprintf("/event/%d", snap.ID)
	p := detailPage{
		basePage:      basePage{Title: "Event Details", Notice: snap.Notice},
		ID:            snap.ID,
		Token:         snap.Token,
		State:         snap.State,
		Error:         snap.Error,
		Details:       snap.Details,
		ViewURL:       detailURL(snap.ID, snap.Token),
		ActionPrefix:  prefix,
		Busy:          snap.Busy,
		FieldErrCount: len(snap.FieldErrors),
		Form: formView{
			Action:       prefix + "/save",
			Token:        snap.Token,
			Values:       snap.Form,
			Errors:       snap.FieldErrors.ByField(),
			SubmitLabel:  "Save Changes",
			Busy:         snap.Busy,
			CancelAction: prefix + "/cancel",
		},
	}
	if snap.Event != nil {
		card := newEventCard(*snap.Event, loc)
		p.Card = &card
		p.Title = snap.Event.Title
		p.ConfirmText = fmt.Sprintf("Are you sure you want to delete %q? This action cannot be undone.", snap.Event.Title)
	}
	return p
}

func newEventCard(e model.Event, loc *time.Location) eventCard {
	return eventCard{
		ID:          e.ID,
		Title:       e.Title,
		When:        describeRange(e, loc),
		Description: model.StringValue(e.Description),
		Location:    model.StringValue(e.Location),
		URL:         fmt.Sprintf("/event/%d", e.ID),
	}
}

// describeRange renders the event's span in loc. Unreadable timestamps are
// shown raw.
func describeRange(e model.Event, loc *time.Location) string {
	start, err1 := e.Start(loc)
	end, err2 := e.End(loc)
	if err1 != nil || err2 != nil {
		return e.StartDateTime + " - " + e.EndDateTime
	}
	start, end = start.In(loc), end.In(loc)
	const day, clock = "Mon, Jan 2, 2006 15:04", "15:04"
	if start.Year() == end.Year() && start.YearDay() == end.YearDay() {
		return start.Format(day) + " - " + end.Format(clock)
	}
	return start.Format(day) + " - " + end.Format(day)
}

func detailURL(id int64, token string) string {
	u := fmt.Sprintf("/event/%d", id)
	if token == "" {
		return u
	}
	return u + "?" + url.Values{viewParam: {token}}.Encode()
}
