package datemath

import (
	"fmt"
	"strings"
	"time"
)

// MonthFormat is the layout of the month query value, e.g. "2024-01".
const MonthFormat = "2006-01"

// Parser resolves calendar dates in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Warsaw"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser bound to an already loaded location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// ParseMonth converts a month selector into the first instant of that month.
// Accepted values: "" or "today" (month of baseTime), "next"/"prev" relative to
// baseTime, and "YYYY-MM".
func (p *Parser) ParseMonth(value string, baseTime time.Time) (time.Time, error) {
	value = strings.ToLower(strings.TrimSpace(value))

	switch value {
	case "", "today":
		return p.StartOfMonth(baseTime), nil
	case "next":
		return p.StartOfMonth(baseTime).AddDate(0, 1, 0), nil
	case "prev":
		return p.StartOfMonth(baseTime).AddDate(0, -1, 0), nil
	}

	t, err := time.ParseInLocation(MonthFormat, value, p.location)
	if err != nil {
		return baseTime, fmt.Errorf("invalid month %q: %w", value, err)
	}
	return t, nil
}

// StartOfMonth returns midnight of the first day of t's month in the parser's timezone.
func (p *Parser) StartOfMonth(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.location)
}

// GridStart returns the first day shown on a month grid whose weeks begin on weekStart.
func (p *Parser) GridStart(monthStart time.Time, weekStart time.Weekday) time.Time {
	first := p.StartOfDay(monthStart)
	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	return first.AddDate(0, 0, -offset)
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// ParseWeekday maps "monday".."sunday" to time.Weekday.
func ParseWeekday(name string) (time.Weekday, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	wd, ok := weekdays[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return time.Sunday, fmt.Errorf("unknown weekday: %q", name)
	}
	return wd, nil
}
