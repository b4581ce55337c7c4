package rest

import (
	"context"
	"fmt"

	"event-calendar/internal/event/repository"
	"event-calendar/internal/model"
	pkgLog "event-calendar/pkg/log"
)

type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates the REST-backed Transport.
func New(client *Client, l pkgLog.Logger) repository.Transport {
	if client == nil {
		panic("event/repository/rest: client is required")
	}
	return &implRepository{client: client, l: l}
}

func (r *implRepository) Create(ctx context.Context, req model.EventRequest) (model.Event, error) {
	e, err := r.client.CreateEvent(ctx, req)
	if err != nil {
		r.l.Debugf(ctx, "%s: %v", r.dsn("Create"), err)
		return model.Event{}, err
	}
	return e, nil
}

func (r *implRepository) List(ctx context.Context) ([]model.Event, error) {
	events, err := r.client.ListEvents(ctx)
	if err != nil {
		r.l.Debugf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, err
	}
	return events, nil
}

func (r *implRepository) GetByID(ctx context.Context, id int64) (model.Event, error) {
	e, err := r.client.GetEvent(ctx, id)
	if err != nil {
		r.l.Debugf(ctx, "%s id=%d: %v", r.dsn("GetByID"), id, err)
		return model.Event{}, err
	}
	return e, nil
}

func (r *implRepository) Update(ctx context.Context, id int64, req model.EventRequest) (model.Event, error) {
	e, err := r.client.UpdateEvent(ctx, id, req)
	if err != nil {
		r.l.Debugf(ctx, "%s id=%d: %v", r.dsn("Update"), id, err)
		return model.Event{}, err
	}
	return e, nil
}

func (r *implRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.DeleteEvent(ctx, id); err != nil {
		r.l.Debugf(ctx, "%s id=%d: %v", r.dsn("Delete"), id, err)
		return err
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("event/repository/rest.%s", method)
}
