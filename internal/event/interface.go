package event

import (
	"context"

	"event-calendar/internal/event/validation"
	"event-calendar/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// List view
	LoadList(ctx context.Context, input ListInput) ListSnapshot
	Events(ctx context.Context) ([]model.Event, error)
	CalendarEntries(ctx context.Context) ([]model.CalendarEntry, error)
	ExportICS(ctx context.Context) (string, error)

	// Create view
	OpenCreate(ctx context.Context) CreateSnapshot
	SubmitCreate(ctx context.Context, input SubmitCreateInput) (CreateSnapshot, error)

	// Detail view
	OpenDetail(ctx context.Context, id int64) DetailSnapshot
	Detail(ctx context.Context, input DetailInput) DetailSnapshot
	Edit(ctx context.Context, input DetailInput) (DetailSnapshot, error)
	CancelEdit(ctx context.Context, input DetailInput) (DetailSnapshot, error)
	Save(ctx context.Context, input SaveInput) (DetailSnapshot, error)
	RequestDelete(ctx context.Context, input DetailInput) (DetailSnapshot, error)
	AbortDelete(ctx context.Context, input DetailInput) (DetailSnapshot, error)
	ConfirmDelete(ctx context.Context, input DetailInput) (DetailSnapshot, error)

	// Validation
	Validate(input ValidateInput) validation.Errors
}
