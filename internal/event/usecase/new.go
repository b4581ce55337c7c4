package usecase

import (
	"time"

	"event-calendar/internal/event"
	"event-calendar/internal/event/repository"
	"event-calendar/internal/event/validation"
	"event-calendar/pkg/log"
)

// Config holds the presentation defaults of the view controllers.
type Config struct {
	// DefaultTimezone is used when the request carries no timezone hint.
	DefaultTimezone string
	// WeekStart is the first column of the month grid.
	WeekStart time.Weekday
}

// deps is shared by every view the use case creates.
type deps struct {
	transport repository.Transport
	validator *validation.Validator
	l         log.Logger
}

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	deps  *deps
	views *Views
	cfg   Config
	clock func() time.Time
}

// New creates a new event UseCase implementation.
func New(transport repository.Transport, validator *validation.Validator, views *Views, l log.Logger, cfg Config) event.UseCase {
	if cfg.DefaultTimezone == "" {
		cfg.DefaultTimezone = "UTC"
	}
	return &implUseCase{
		deps: &deps{
			transport: transport,
			validator: validator,
			l:         l,
		},
		views: views,
		cfg:   cfg,
		clock: time.Now,
	}
}
