package usecase

import (
	"context"
	"errors"

	"event-calendar/internal/event"
	"event-calendar/internal/event/validation"
)

// OpenCreate starts a new add-event view.
func (uc *implUseCase) OpenCreate(ctx context.Context) event.CreateSnapshot {
	token := uc.views.newToken()
	cv := newCreateView(uc.deps, token)
	uc.views.add(token, cv)
	return cv.Snapshot()
}

// SubmitCreate submits the form of the view behind input.Token. A missing or
// expired token gets a fresh view so the form is never lost.
func (uc *implUseCase) SubmitCreate(ctx context.Context, input event.SubmitCreateInput) (event.CreateSnapshot, error) {
	cv, ok := uc.views.create(input.Token)
	if !ok {
		token := uc.views.newToken()
		cv = newCreateView(uc.deps, token)
		uc.views.add(token, cv)
	}

	snap, err := cv.Submit(ctx, input.Form)
	if err != nil {
		if !errors.Is(err, event.ErrSubmissionInFlight) {
			uc.deps.l.Errorf(ctx, "uc.SubmitCreate: %v", err)
		}
		return snap, err
	}
	if snap.Navigate != "" {
		uc.views.Remove(snap.Token)
	}
	return snap, nil
}

// Validate checks a live form snapshot. With a field set, only that field and
// the fields depending on it are reported.
func (uc *implUseCase) Validate(input event.ValidateInput) validation.Errors {
	if input.Field == "" {
		return uc.deps.validator.Validate(input.Form)
	}
	return uc.deps.validator.ValidateField(input.Form, input.Field)
}
