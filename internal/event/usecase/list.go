package usecase

import (
	"context"
	"time"

	"event-calendar/internal/event"
	"event-calendar/internal/event/calendar"
	"event-calendar/internal/event/ics"
	"event-calendar/internal/model"
	"event-calendar/pkg/datemath"
	"event-calendar/pkg/tz"
)

// LoadList runs a fresh list view and lays its entries on the requested month.
// An unreadable month falls back to the current one.
func (uc *implUseCase) LoadList(ctx context.Context, input event.ListInput) event.ListSnapshot {
	snap := newListView(uc.deps).Load(ctx)

	loc := uc.location(ctx)
	now := uc.clock().In(loc)
	month, err := datemath.NewParserIn(loc).ParseMonth(input.Month, now)
	if err != nil {
		uc.deps.l.Debugf(ctx, "uc.LoadList ParseMonth: %v", err)
		month = now
	}
	snap.Month = calendar.Build(month, snap.Entries, loc, uc.cfg.WeekStart, now)
	return snap
}

// Events returns every event in backend order.
func (uc *implUseCase) Events(ctx context.Context) ([]model.Event, error) {
	events, err := uc.deps.transport.List(ctx)
	if err != nil {
		uc.deps.l.Errorf(ctx, "uc.Events List: %v", err)
		return nil, err
	}
	return events, nil
}

// CalendarEntries returns every event projected for the calendar.
func (uc *implUseCase) CalendarEntries(ctx context.Context) ([]model.CalendarEntry, error) {
	events, err := uc.Events(ctx)
	if err != nil {
		return nil, err
	}
	return event.Project(events), nil
}

// ExportICS renders every event as an iCalendar feed in the caller's timezone.
func (uc *implUseCase) ExportICS(ctx context.Context) (string, error) {
	events, err := uc.Events(ctx)
	if err != nil {
		return "", err
	}

	out, skipped := ics.Encode(events, uc.location(ctx), uc.clock())
	if len(skipped) > 0 {
		uc.deps.l.Warnf(ctx, "uc.ExportICS: skipped events with unreadable timestamps: %v", skipped)
	}
	return out, nil
}

// location resolves the caller's timezone, falling back to UTC when the
// configured default cannot be loaded either.
func (uc *implUseCase) location(ctx context.Context) *time.Location {
	name := tz.FromContext(ctx, uc.cfg.DefaultTimezone)
	loc, err := time.LoadLocation(name)
	if err != nil {
		uc.deps.l.Warnf(ctx, "uc.location LoadLocation %q: %v", name, err)
		return time.UTC
	}
	return loc
}
