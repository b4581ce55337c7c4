package repository

import (
	"context"

	"event-calendar/internal/model"
)

// Transport is the boundary to the events REST backend. Every failure it
// returns is a *TransportError.
type Transport interface {
	Create(ctx context.Context, req model.EventRequest) (model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
	GetByID(ctx context.Context, id int64) (model.Event, error)
	Update(ctx context.Context, id int64, req model.EventRequest) (model.Event, error)
	Delete(ctx context.Context, id int64) error
}

// Pinger reports whether the backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
