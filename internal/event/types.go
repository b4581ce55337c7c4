package event

import (
	"event-calendar/internal/event/calendar"
	"event-calendar/internal/event/validation"
	"event-calendar/internal/model"
)

// CalendarPath is where views navigate after a successful create or delete.
const CalendarPath = "/calendar"

// --- View states ---

type ListState string

const (
	ListLoading ListState = "loading"
	ListLoaded  ListState = "loaded"
	ListError   ListState = "error"
)

type DetailState string

const (
	DetailLoading          DetailState = "loading"
	DetailViewing          DetailState = "viewing"
	DetailEditing          DetailState = "editing"
	DetailConfirmingDelete DetailState = "confirming_delete"
	DetailDeleting         DetailState = "deleting"
	DetailDeleted          DetailState = "deleted"
	DetailNotFound         DetailState = "not_found"
	DetailFailed           DetailState = "failed"
)

type CreateState string

const (
	CreateIdle       CreateState = "idle"
	CreateSubmitting CreateState = "submitting"
)

// --- Snapshots handed to the delivery layer ---

// ListSnapshot is the rendered state of the calendar list page.
type ListSnapshot struct {
	State   ListState
	Events  []model.Event
	Entries []model.CalendarEntry
	Month   calendar.Month
	Error   string
}

// DetailSnapshot is the rendered state of an event detail page.
type DetailSnapshot struct {
	Token       string
	ID          int64
	State       DetailState
	Event       *model.Event
	Form        model.EventForm
	FieldErrors validation.Errors
	Error       string
	// Details are the field messages reported by the backend.
	Details []string
	// Notice is an informational message, such as an expired view.
	Notice string
	Busy   bool
	// Navigate is set when the view asks to leave the page.
	Navigate string
}

// CreateSnapshot is the rendered state of the add-event page.
type CreateSnapshot struct {
	Token       string
	State       CreateState
	Form        model.EventForm
	FieldErrors validation.Errors
	Error       string
	Details     []string
	Navigate    string
	Created     *model.Event
}

// --- UseCase inputs ---

// ListInput selects the month shown on the calendar page ("" for the current one).
type ListInput struct {
	Month string
}

// DetailInput addresses an action at a detail view.
type DetailInput struct {
	Token string
	ID    int64
}

// SaveInput carries the edited form for a detail view.
type SaveInput struct {
	DetailInput
	Form model.EventForm
}

// SubmitCreateInput carries the add-event form.
type SubmitCreateInput struct {
	Token string
	Form  model.EventForm
}

// ValidateInput is a live form snapshot plus the field that changed ("" for all).
type ValidateInput struct {
	Form  model.EventForm
	Field string
}
