package event

import "event-calendar/internal/model"

// Project maps stored events to calendar entries, one per event, in input order.
// The input is not modified and optional fields are copied, so entries never
// alias the caller's strings.
func Project(events []model.Event) []model.CalendarEntry {
	entries := make([]model.CalendarEntry, len(events))
	for i, e := range events {
		entries[i] = model.CalendarEntry{
			ID:    e.IDString(),
			Title: e.Title,
			Start: e.StartDateTime,
			End:   e.EndDateTime,
			ExtendedProps: model.ExtendedProps{
				Location:    clone(e.Location),
				Description: clone(e.Description),
			},
		}
	}
	return entries
}

func clone(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
