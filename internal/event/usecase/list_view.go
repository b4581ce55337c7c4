package usecase

import (
	"context"

	"event-calendar/internal/event"
	"event-calendar/internal/model"
)

// ListView drives the calendar page: loading, then loaded or error.
type ListView struct {
	fsm
	deps    *deps
	state   event.ListState
	events  []model.Event
	entries []model.CalendarEntry
	errMsg  string
}

func newListView(d *deps) *ListView {
	return &ListView{deps: d, state: event.ListLoading}
}

// Load fetches all events and projects them. A failure leaves the view in
// the error state with the message kept; there is no retry.
func (v *ListView) Load(ctx context.Context) event.ListSnapshot {
	v.mu.Lock()
	v.state = event.ListLoading
	v.errMsg = ""
	epoch := v.begin()
	v.mu.Unlock()

	events, err := v.deps.transport.List(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current(epoch) {
		return v.snapshot()
	}
	if err != nil {
		v.deps.l.Errorf(ctx, "uc.ListView.Load List: %v", err)
		v.state = event.ListError
		v.events = nil
		v.entries = nil
		v.errMsg = errorText(err, msgListFailed)
		return v.snapshot()
	}

	v.state = event.ListLoaded
	v.events = events
	v.entries = event.Project(events)
	return v.snapshot()
}

// Snapshot returns the current state.
func (v *ListView) Snapshot() event.ListSnapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

func (v *ListView) snapshot() event.ListSnapshot {
	return event.ListSnapshot{
		State:   v.state,
		Events:  append([]model.Event(nil), v.events...),
		Entries: append([]model.CalendarEntry(nil), v.entries...),
		Error:   v.errMsg,
	}
}
