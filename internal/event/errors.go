package event

import "errors"

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrInvalidID          = errors.New("invalid event id")
	ErrInvalidTransition  = errors.New("action not allowed in the current view state")
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrViewNotFound       = errors.New("view not found or expired")
)
