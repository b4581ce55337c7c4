// Package calendar lays calendar entries out on a month grid.
package calendar

import (
	"sort"
	"time"

	"event-calendar/internal/model"
	"event-calendar/pkg/datemath"
)

const (
	// WeeksPerGrid is fixed so the grid height never jumps between months.
	WeeksPerGrid = 6
	daysPerWeek  = 7

	timeLabelFormat  = "15:04"
	monthLabelFormat = "January 2006"
)

// Month is a rendered month grid.
type Month struct {
	Start    time.Time
	Label    string
	Prev     string
	Next     string
	Today    string
	Weekdays []string
	Weeks    []Week
}

// Week is one row of the grid.
type Week struct {
	Days []Day
}

// Day is one cell of the grid.
type Day struct {
	Date    time.Time
	InMonth bool
	IsToday bool
	Items   []Item
}

// Item is an entry as shown inside a day cell.
type Item struct {
	ID          string
	Title       string
	Time        string
	Location    string
	Description string
	// Continued marks an entry that started on an earlier day.
	Continued bool
	start     time.Time
}

type span struct {
	entry model.CalendarEntry
	start time.Time
	end   time.Time
}

// Build lays entries onto the 6x7 grid of the month containing month.
// An entry appears on every day it overlaps, with its end treated as
// exclusive. Entries whose timestamps cannot be parsed are left off the grid.
func Build(month time.Time, entries []model.CalendarEntry, loc *time.Location, weekStart time.Weekday, now time.Time) Month {
	p := datemath.NewParserIn(loc)
	loc = p.Location()

	monthStart := p.StartOfMonth(month)
	gridStart := p.GridStart(monthStart, weekStart)
	today := p.StartOfDay(now)

	spans := make([]span, 0, len(entries))
	for _, e := range entries {
		start, err := model.ParseDateTime(e.Start, loc)
		if err != nil {
			continue
		}
		end, err := model.ParseDateTime(e.End, loc)
		if err != nil {
			continue
		}
		spans = append(spans, span{entry: e, start: start.In(loc), end: end.In(loc)})
	}

	m := Month{
		Start:    monthStart,
		Label:    monthStart.Format(monthLabelFormat),
		Prev:     monthStart.AddDate(0, -1, 0).Format(datemath.MonthFormat),
		Next:     monthStart.AddDate(0, 1, 0).Format(datemath.MonthFormat),
		Today:    today.Format(datemath.MonthFormat),
		Weekdays: weekdayLabels(weekStart),
		Weeks:    make([]Week, 0, WeeksPerGrid),
	}

	day := gridStart
	for w := 0; w < WeeksPerGrid; w++ {
		week := Week{Days: make([]Day, 0, daysPerWeek)}
		for d := 0; d < daysPerWeek; d++ {
			next := day.AddDate(0, 0, 1)
			week.Days = append(week.Days, Day{
				Date:    day,
				InMonth: day.Month() == monthStart.Month() && day.Year() == monthStart.Year(),
				IsToday: day.Equal(today),
				Items:   itemsFor(spans, day, next),
			})
			day = next
		}
		m.Weeks = append(m.Weeks, week)
	}
	return m
}

func itemsFor(spans []span, dayStart, dayEnd time.Time) []Item {
	var items []Item
	for _, s := range spans {
		if !overlaps(s, dayStart, dayEnd) {
			continue
		}
		item := Item{
			ID:          s.entry.ID,
			Title:       s.entry.Title,
			Location:    model.StringValue(s.entry.ExtendedProps.Location),
			Description: model.StringValue(s.entry.ExtendedProps.Description),
			start:       s.start,
		}
		if s.start.Before(dayStart) {
			item.Continued = true
		} else {
			item.Time = s.start.Format(timeLabelFormat)
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].start.Before(items[j].start)
	})
	return items
}

func overlaps(s span, dayStart, dayEnd time.Time) bool {
	if !s.end.After(s.start) {
		// zero-length entries still show on the day they start
		return !s.start.Before(dayStart) && s.start.Before(dayEnd)
	}
	return s.start.Before(dayEnd) && s.end.After(dayStart)
}

func weekdayLabels(weekStart time.Weekday) []string {
	labels := make([]string, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		labels = append(labels, time.Weekday((int(weekStart) + i) % daysPerWeek).String()[:3])
	}
	return labels
}
