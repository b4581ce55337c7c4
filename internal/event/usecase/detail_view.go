package usecase

import (
	"context"

	"event-calendar/internal/event"
	"event-calendar/internal/event/repository"
	"event-calendar/internal/event/validation"
	"event-calendar/internal/model"
)

// DetailView drives the event detail page.
//
//	loading -> viewing | not_found | failed
//	viewing -> editing -> (cancel: loading) | (save: viewing)
//	viewing | editing -> confirming_delete -> (abort: previous) | deleting
//	deleting -> deleted | previous state with error
type DetailView struct {
	fsm
	deps  *deps
	token string
	id    int64

	state       event.DetailState
	prev        event.DetailState
	event       *model.Event
	form        model.EventForm
	fieldErrors validation.Errors
	errMsg      string
	details     []string
	notice      string
	busy        bool
	navigate    string
}

func newDetailView(d *deps, token string, id int64) *DetailView {
	return &DetailView{
		deps:  d,
		token: token,
		id:    id,
		state: event.DetailLoading,
	}
}

// Load fetches the event. A 404 ends in not_found, any other failure in failed.
func (v *DetailView) Load(ctx context.Context) event.DetailSnapshot {
	v.mu.Lock()
	epoch := v.beginLoad()
	v.mu.Unlock()
	return v.fetch(ctx, epoch)
}

// Snapshot returns the current state.
func (v *DetailView) Snapshot() event.DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

// Edit switches from viewing to editing with the form seeded from the event.
func (v *DetailView) Edit() (event.DetailSnapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != event.DetailViewing || v.event == nil {
		return v.snapshot(), event.ErrInvalidTransition
	}
	v.state = event.DetailEditing
	v.form = model.NewEventForm(*v.event)
	v.fieldErrors = nil
	v.clearError()
	return v.snapshot(), nil
}

// Cancel drops the edits and re-fetches the event.
func (v *DetailView) Cancel(ctx context.Context) (event.DetailSnapshot, error) {
	v.mu.Lock()
	if v.busy {
		defer v.mu.Unlock()
		return v.snapshot(), event.ErrSubmissionInFlight
	}
	if v.state != event.DetailEditing {
		defer v.mu.Unlock()
		return v.snapshot(), event.ErrInvalidTransition
	}
	epoch := v.beginLoad()
	v.mu.Unlock()

	return v.fetch(ctx, epoch), nil
}

// Save validates form and, if valid, replaces the event on the backend.
// Invalid forms and backend failures keep the view in editing.
func (v *DetailView) Save(ctx context.Context, form model.EventForm) (event.DetailSnapshot, error) {
	v.mu.Lock()
	if v.busy {
		defer v.mu.Unlock()
		return v.snapshot(), event.ErrSubmissionInFlight
	}
	if v.state != event.DetailEditing {
		defer v.mu.Unlock()
		return v.snapshot(), event.ErrInvalidTransition
	}

	v.form = form
	v.clearError()
	if errs := v.deps.validator.Validate(form); len(errs) > 0 {
		defer v.mu.Unlock()
		v.fieldErrors = errs
		return v.snapshot(), nil
	}
	v.fieldErrors = nil
	v.busy = true
	epoch := v.begin()
	v.mu.Unlock()

	updated, err := v.deps.transport.Update(ctx, v.id, form.Request())

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(epoch) {
		return v.snapshot(), nil
	}
	v.busy = false
	if err != nil {
		if repository.IsNotFound(err) {
			v.deps.l.Warnf(ctx, "uc.DetailView.Save Update: id=%d: %v", v.id, err)
			v.event = nil
			v.fieldErrors = nil
			v.state = event.DetailNotFound
			v.errMsg = msgNotFound
			return v.snapshot(), nil
		}
		v.deps.l.Errorf(ctx, "uc.DetailView.Save Update: id=%d: %v", v.id, err)
		v.errMsg = errorText(err, msgUpdateFailed)
		v.details = errorDetails(err)
		return v.snapshot(), nil
	}

	v.event = &updated
	v.form = model.NewEventForm(updated)
	v.state = event.DetailViewing
	return v.snapshot(), nil
}

// RequestDelete opens the delete confirmation from viewing or editing.
func (v *DetailView) RequestDelete() (event.DetailSnapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.busy {
		return v.snapshot(), event.ErrSubmissionInFlight
	}
	if v.state != event.DetailViewing && v.state != event.DetailEditing {
		return v.snapshot(), event.ErrInvalidTransition
	}
	v.prev = v.state
	v.state = event.DetailConfirmingDelete
	v.clearError()
	return v.snapshot(), nil
}

// AbortDelete closes the confirmation and returns to the previous state.
func (v *DetailView) AbortDelete() (event.DetailSnapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != event.DetailConfirmingDelete {
		return v.snapshot(), event.ErrInvalidTransition
	}
	v.state = v.prev
	return v.snapshot(), nil
}

// ConfirmDelete deletes the event. It is accepted only from the
// confirmation, so Transport.Delete runs at most once per confirmation.
// Success asks the page to navigate back to the calendar.
func (v *DetailView) ConfirmDelete(ctx context.Context) (event.DetailSnapshot, error) {
	v.mu.Lock()
	if v.state == event.DetailDeleting {
		defer v.mu.Unlock()
		return v.snapshot(), event.ErrSubmissionInFlight
	}
	if v.state != event.DetailConfirmingDelete {
		defer v.mu.Unlock()
		return v.snapshot(), event.ErrInvalidTransition
	}
	v.state = event.DetailDeleting
	epoch := v.begin()
	v.mu.Unlock()

	err := v.deps.transport.Delete(ctx, v.id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(epoch) {
		return v.snapshot(), nil
	}
	if err != nil {
		v.deps.l.Errorf(ctx, "uc.DetailView.ConfirmDelete Delete: id=%d: %v", v.id, err)
		v.state = v.prev
		v.errMsg = errorText(err, msgDeleteFailed)
		v.details = errorDetails(err)
		return v.snapshot(), nil
	}

	v.state = event.DetailDeleted
	v.navigate = event.CalendarPath
	return v.snapshot(), nil
}

// beginLoad moves to loading and starts a new epoch. Callers hold mu.
func (v *DetailView) beginLoad() uint64 {
	v.state = event.DetailLoading
	v.busy = false
	v.fieldErrors = nil
	v.clearError()
	return v.begin()
}

func (v *DetailView) fetch(ctx context.Context, epoch uint64) event.DetailSnapshot {
	e, err := v.deps.transport.GetByID(ctx, v.id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(epoch) {
		return v.snapshot()
	}
	if err != nil {
		v.event = nil
		if repository.IsNotFound(err) {
			v.deps.l.Warnf(ctx, "uc.DetailView.Load GetByID: id=%d: %v", v.id, err)
			v.state = event.DetailNotFound
			v.errMsg = msgNotFound
			return v.snapshot()
		}
		v.deps.l.Errorf(ctx, "uc.DetailView.Load GetByID: id=%d: %v", v.id, err)
		v.state = event.DetailFailed
		v.errMsg = errorText(err, msgFetchFailed)
		return v.snapshot()
	}

	v.event = &e
	v.form = model.NewEventForm(e)
	v.state = event.DetailViewing
	return v.snapshot()
}

// expire marks a view opened in place of an expired one, so the page can
// tell the user their last action was not applied.
func (v *DetailView) expire() event.DetailSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.notice = msgExpired
	return v.snapshot()
}

func (v *DetailView) clearError() {
	v.errMsg = ""
	v.details = nil
	v.notice = ""
}

func (v *DetailView) snapshot() event.DetailSnapshot {
	snap := event.DetailSnapshot{
		Token:       v.token,
		ID:          v.id,
		State:       v.state,
		Form:        v.form,
		FieldErrors: append(validation.Errors(nil), v.fieldErrors...),
		Error:       v.errMsg,
		Details:     append([]string(nil), v.details...),
		Notice:      v.notice,
		Busy:        v.busy || v.state == event.DetailLoading || v.state == event.DetailDeleting,
		Navigate:    v.navigate,
	}
	if v.event != nil {
		e := *v.event
		snap.Event = &e
	}
	return snap
}
