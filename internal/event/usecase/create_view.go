package usecase

import (
	"context"

	"event-calendar/internal/event"
	"event-calendar/internal/event/validation"
	"event-calendar/internal/model"
)

// CreateView drives the add-event page: idle, then submitting while the
// backend call is out.
type CreateView struct {
	fsm
	deps  *deps
	token string

	state       event.CreateState
	form        model.EventForm
	fieldErrors validation.Errors
	errMsg      string
	details     []string
	navigate    string
	created     *model.Event
}

func newCreateView(d *deps, token string) *CreateView {
	return &CreateView{
		deps:  d,
		token: token,
		state: event.CreateIdle,
	}
}

// Submit validates form and creates the event. An invalid form never reaches
// the backend. A second Submit while one is in flight is rejected.
func (v *CreateView) Submit(ctx context.Context, form model.EventForm) (event.CreateSnapshot, error) {
	v.mu.Lock()
	if v.state == event.CreateSubmitting {
		defer v.mu.Unlock()
		return v.snapshot(), event.ErrSubmissionInFlight
	}

	v.form = form
	v.errMsg = ""
	v.details = nil
	v.navigate = ""
	if errs := v.deps.validator.Validate(form); len(errs) > 0 {
		defer v.mu.Unlock()
		v.fieldErrors = errs
		return v.snapshot(), nil
	}
	v.fieldErrors = nil
	v.state = event.CreateSubmitting
	epoch := v.begin()
	v.mu.Unlock()

	created, err := v.deps.transport.Create(ctx, form.Request())

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(epoch) {
		return v.snapshot(), nil
	}
	v.state = event.CreateIdle
	if err != nil {
		v.deps.l.Errorf(ctx, "uc.CreateView.Submit Create: %v", err)
		v.errMsg = errorText(err, msgCreateFailed)
		v.details = errorDetails(err)
		return v.snapshot(), nil
	}

	v.created = &created
	v.form = model.EventForm{}
	v.navigate = event.CalendarPath
	return v.snapshot(), nil
}

// Snapshot returns the current state.
func (v *CreateView) Snapshot() event.CreateSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

func (v *CreateView) snapshot() event.CreateSnapshot {
	snap := event.CreateSnapshot{
		Token:       v.token,
		State:       v.state,
		Form:        v.form,
		FieldErrors: append(validation.Errors(nil), v.fieldErrors...),
		Error:       v.errMsg,
		Details:     append([]string(nil), v.details...),
		Navigate:    v.navigate,
	}
	if v.created != nil {
		e := *v.created
		snap.Created = &e
	}
	return snap
}
