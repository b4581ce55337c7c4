package usecase

import (
	"errors"
	"sync"

	"event-calendar/internal/event/repository"
)

// UI fallbacks when the backend gives no message.
const (
	msgCreateFailed = "Failed to create event"
	msgUpdateFailed = "Failed to update event"
	msgDeleteFailed = "Failed to delete event"
	msgFetchFailed  = "Failed to fetch event details"
	msgListFailed   = "Failed to load events"
	msgNotFound     = "Event not found"
	msgExpired      = "This page expired, please retry"
)

// fsm carries the bookkeeping every view controller shares. Each transport
// call is tagged with the epoch current when it started; a result whose
// epoch is no longer current belongs to a view that has moved on and is
// dropped. mu is never held across a transport call.
type fsm struct {
	mu     sync.Mutex
	epoch  uint64
	closed bool
}

// begin starts a new epoch. Callers hold mu.
func (f *fsm) begin() uint64 {
	f.epoch++
	return f.epoch
}

// current reports whether a result tagged with epoch may be applied. Callers hold mu.
func (f *fsm) current(epoch uint64) bool {
	return !f.closed && f.epoch == epoch
}

// Close retires the view. Results still in flight are dropped.
func (f *fsm) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	f.epoch++
}

// errorText picks the message shown inline for a failed transport call.
func errorText(err error, fallback string) string {
	var te *repository.TransportError
	if errors.As(err, &te) && te.Message != "" {
		return te.Message
	}
	return fallback
}

// errorDetails returns the field messages the backend attached to err.
func errorDetails(err error) []string {
	var te *repository.TransportError
	if errors.As(err, &te) && len(te.Errors) > 0 {
		return append([]string(nil), te.Errors...)
	}
	return nil
}
