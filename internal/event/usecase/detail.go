package usecase

import (
	"context"

	"event-calendar/internal/event"
)

// OpenDetail starts a new detail view for event id and loads it.
func (uc *implUseCase) OpenDetail(ctx context.Context, id int64) event.DetailSnapshot {
	_, snap := uc.openDetail(ctx, id)
	return snap
}

func (uc *implUseCase) openDetail(ctx context.Context, id int64) (*DetailView, event.DetailSnapshot) {
	token := uc.views.newToken()
	dv := newDetailView(uc.deps, token, id)
	uc.views.add(token, dv)
	return dv, dv.Load(ctx)
}

// Detail returns the view behind input.Token, or opens a new one when the
// token is unknown or expired. A view that failed to load is loaded again.
func (uc *implUseCase) Detail(ctx context.Context, input event.DetailInput) event.DetailSnapshot {
	dv, ok := uc.views.detail(input.Token, input.ID)
	if !ok {
		return uc.OpenDetail(ctx, input.ID)
	}
	snap := dv.Snapshot()
	if snap.State == event.DetailFailed {
		return dv.Load(ctx)
	}
	return snap
}

func (uc *implUseCase) Edit(ctx context.Context, input event.DetailInput) (event.DetailSnapshot, error) {
	return uc.withDetail(ctx, input, func(dv *DetailView) (event.DetailSnapshot, error) {
		return dv.Edit()
	})
}

func (uc *implUseCase) CancelEdit(ctx context.Context, input event.DetailInput) (event.DetailSnapshot, error) {
	return uc.withDetail(ctx, input, func(dv *DetailView) (event.DetailSnapshot, error) {
		return dv.Cancel(ctx)
	})
}

// Save submits the edited form. When the view behind the token is gone the
// edit is replayed on a fresh view, so the posted form is never dropped.
func (uc *implUseCase) Save(ctx context.Context, input event.SaveInput) (event.DetailSnapshot, error) {
	if input.ID <= 0 {
		return invalidDetail(input.ID), event.ErrInvalidID
	}

	dv, ok := uc.views.detail(input.Token, input.ID)
	if !ok {
		uc.deps.l.Debugf(ctx, "uc.Save: view %q gone, replaying on a new view for id=%d", input.Token, input.ID)
		var snap event.DetailSnapshot
		dv, snap = uc.openDetail(ctx, input.ID)
		if snap.State != event.DetailViewing {
			return dv.expire(), nil
		}
		if _, err := dv.Edit(); err != nil {
			return dv.expire(), nil
		}
	}
	return dv.Save(ctx, input.Form)
}

func (uc *implUseCase) RequestDelete(ctx context.Context, input event.DetailInput) (event.DetailSnapshot, error) {
	return uc.withDetail(ctx, input, func(dv *DetailView) (event.DetailSnapshot, error) {
		return dv.RequestDelete()
	})
}

func (uc *implUseCase) AbortDelete(ctx context.Context, input event.DetailInput) (event.DetailSnapshot, error) {
	return uc.withDetail(ctx, input, func(dv *DetailView) (event.DetailSnapshot, error) {
		return dv.AbortDelete()
	})
}

func (uc *implUseCase) ConfirmDelete(ctx context.Context, input event.DetailInput) (event.DetailSnapshot, error) {
	snap, err := uc.withDetail(ctx, input, func(dv *DetailView) (event.DetailSnapshot, error) {
		return dv.ConfirmDelete(ctx)
	})
	if err == nil && snap.State == event.DetailDeleted {
		uc.views.Remove(snap.Token)
	}
	return snap, err
}

// withDetail runs action on the view behind input. When the view is gone a
// fresh one is opened, marked with msgExpired and returned with
// event.ErrViewNotFound; the action is not replayed.
func (uc *implUseCase) withDetail(ctx context.Context, input event.DetailInput, action func(*DetailView) (event.DetailSnapshot, error)) (event.DetailSnapshot, error) {
	if input.ID <= 0 {
		return invalidDetail(input.ID), event.ErrInvalidID
	}

	dv, ok := uc.views.detail(input.Token, input.ID)
	if !ok {
		dv, _ = uc.openDetail(ctx, input.ID)
		return dv.expire(), event.ErrViewNotFound
	}
	return action(dv)
}

func invalidDetail(id int64) event.DetailSnapshot {
	return event.DetailSnapshot{ID: id, State: event.DetailNotFound, Error: msgNotFound}
}
