// Package ics renders events as an iCalendar feed.
package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"

	"event-calendar/internal/model"
)

// ProductID identifies the generator in the PRODID property.
const ProductID = "-//event-calendar//EN"

// UIDSuffix makes event UIDs globally unique.
const UIDSuffix = "@event-calendar"

// Encode writes events as a VCALENDAR. Naive timestamps are read as wall
// time in loc. Events whose timestamps cannot be parsed are left out and
// their ids are returned in skipped.
func Encode(events []model.Event, loc *time.Location, stamp time.Time) (out string, skipped []int64) {
	if loc == nil {
		loc = time.UTC
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	for _, e := range events {
		start, err := e.Start(loc)
		if err != nil {
			skipped = append(skipped, e.ID)
			continue
		}
		end, err := e.End(loc)
		if err != nil {
			skipped = append(skipped, e.ID)
			continue
		}

		ve := cal.AddEvent(UID(e.ID))
		ve.SetDtStampTime(stamp)
		ve.SetSummary(e.Title)
		ve.SetStartAt(start)
		ve.SetEndAt(end)
		if d := model.StringValue(e.Description); d != "" {
			ve.SetDescription(d)
		}
		if l := model.StringValue(e.Location); l != "" {
			ve.SetLocation(l)
		}
	}

	return cal.Serialize(), skipped
}

// UID returns the iCalendar UID of an event id.
func UID(id int64) string {
	return fmt.Sprintf("%d%s", id, UIDSuffix)
}
