package event_test

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"testing"

	"event-calendar/internal/event"
	"event-calendar/internal/model"
)

func sampleEvents() []model.Event {
	return []model.Event{
		{
			ID:            7,
			Title:         "Standup",
			StartDateTime: "2024-01-02T09:00:00",
			EndDateTime:   "2024-01-02T09:15:00",
			Location:      model.StringPtr("Room 1"),
		},
		{
			ID:            3,
			Title:         "Review",
			Description:   model.StringPtr("Quarterly"),
			StartDateTime: "2024-01-01T14:00:00Z",
			EndDateTime:   "2024-01-01T15:00:00Z",
		},
		{
			ID:            12,
			Title:         "Offsite",
			StartDateTime: "2024-01-03T08:00:00",
			EndDateTime:   "2024-01-05T18:00:00",
		},
	}
}

func TestProjectPreservesLengthAndOrder(t *testing.T) {
	events := sampleEvents()
	entries := event.Project(events)

	if len(entries) != len(events) {
		t.Fatalf("expected %d entries, got %d", len(events), len(entries))
	}
	for i, e := range events {
		if entries[i].ID != strconv.FormatInt(e.ID, 10) {
			t.Errorf("entry %d: id %q, want %d", i, entries[i].ID, e.ID)
		}
		if entries[i].Start != e.StartDateTime || entries[i].End != e.EndDateTime {
			t.Errorf("entry %d: start/end not passed through: %+v", i, entries[i])
		}
		if entries[i].Title != e.Title {
			t.Errorf("entry %d: title %q", i, entries[i].Title)
		}
	}
}

func TestProjectMetadata(t *testing.T) {
	entries := event.Project(sampleEvents())

	if entries[0].ExtendedProps.Location == nil || *entries[0].ExtendedProps.Location != "Room 1" {
		t.Errorf("expected location on first entry")
	}
	if entries[0].ExtendedProps.Description != nil {
		t.Errorf("absent description must stay nil")
	}

	raw, err := json.Marshal(entries[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), `"description"`) {
		t.Errorf("absent description must be omitted, got %s", raw)
	}
}

func TestProjectEmpty(t *testing.T) {
	if got := event.Project(nil); len(got) != 0 {
		t.Errorf("expected no entries, got %d", len(got))
	}
}

func TestProjectIdempotentAndPure(t *testing.T) {
	events := sampleEvents()
	before := sampleEvents()

	first := event.Project(events)
	second := event.Project(events)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("projection is not deterministic")
	}
	if !reflect.DeepEqual(events, before) {
		t.Errorf("projection mutated its input")
	}

	*first[0].ExtendedProps.Location = "changed"
	if *events[0].Location != "Room 1" {
		t.Errorf("entries alias input strings")
	}
}
