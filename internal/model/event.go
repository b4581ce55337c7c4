package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateTimeFormat is the naive local layout the backend and the form exchange.
const DateTimeFormat = "2006-01-02T15:04:05"

// dateTimeLayouts are tried in order by ParseDateTime.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	DateTimeFormat,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// Event is a stored calendar record as returned by the backend.
type Event struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	StartDateTime string  `json:"startDateTime"`
	EndDateTime   string  `json:"endDateTime"`
	Location      *string `json:"location,omitempty"`
}

// IDString returns the decimal form of the event id.
func (e Event) IDString() string {
	return strconv.FormatInt(e.ID, 10)
}

// Start parses StartDateTime in loc. Naive values are read as wall time in loc.
func (e Event) Start(loc *time.Location) (time.Time, error) {
	return ParseDateTime(e.StartDateTime, loc)
}

// End parses EndDateTime in loc.
func (e Event) End(loc *time.Location) (time.Time, error) {
	return ParseDateTime(e.EndDateTime, loc)
}

// EventRequest is the payload sent on create and update. It has no identity.
type EventRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	StartDateTime string  `json:"startDateTime"`
	EndDateTime   string  `json:"endDateTime"`
	Location      *string `json:"location,omitempty"`
}

// CalendarEntry is the display form of an Event on the calendar grid.
type CalendarEntry struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Start         string        `json:"start"`
	End           string        `json:"end"`
	ExtendedProps ExtendedProps `json:"extendedProps"`
}

// ExtendedProps carries optional metadata shown on the event card.
type ExtendedProps struct {
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ParseDateTime parses an ISO-8601 timestamp. Values with an offset keep it;
// naive values are interpreted in loc (UTC when loc is nil).
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateTimeLayouts {
		if layout == time.RFC3339Nano {
			if t, err := time.Parse(layout, value); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date time %q", value)
}

// FormatDateTime renders t in the naive wire layout.
func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeFormat)
}

// NormalizeDateTime rewrites naive values into DateTimeFormat, so the
// minute-precision value of a datetime-local input gains its seconds.
// Values with an offset and unreadable values are returned unchanged.
func NormalizeDateTime(value string) string {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts[1:] {
		if t, err := time.Parse(layout, value); err == nil {
			return FormatDateTime(t)
		}
	}
	return value
}

// StringPtr returns nil for an empty string and &s otherwise.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil.
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
