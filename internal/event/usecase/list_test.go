package usecase_test

import (
	"context"
	"strings"
	"testing"

	"event-calendar/internal/event"
	"event-calendar/internal/model"
	"event-calendar/pkg/tz"
)

func TestLoadList(t *testing.T) {
	t.Run("loaded", func(t *testing.T) {
		second := meeting()
		second.ID = 2
		second.Title = "Lunch"
		uc, _ := newUseCase(newFakeTransport(meeting(), second))

		snap := uc.LoadList(context.Background(), event.ListInput{Month: "2024-01"})

		if snap.State != event.ListLoaded {
			t.Fatalf("expected loaded, got %s", snap.State)
		}
		if len(snap.Entries) != 2 || snap.Entries[0].ID != "1" || snap.Entries[1].ID != "2" {
			t.Errorf("unexpected entries: %+v", snap.Entries)
		}
		if snap.Month.Label != "January 2024" {
			t.Errorf("unexpected month: %s", snap.Month.Label)
		}
		var onGrid int
		for _, w := range snap.Month.Weeks {
			for _, d := range w.Days {
				onGrid += len(d.Items)
			}
		}
		if onGrid != 2 {
			t.Errorf("expected 2 items on the grid, got %d", onGrid)
		}
	})

	t.Run("error keeps message", func(t *testing.T) {
		tr := newFakeTransport()
		tr.listErr = errBackendDown
		uc, _ := newUseCase(tr)

		snap := uc.LoadList(context.Background(), event.ListInput{})

		if snap.State != event.ListError || snap.Error != "connection refused" {
			t.Errorf("unexpected snapshot: %+v", snap)
		}
		if len(snap.Month.Weeks) == 0 {
			t.Error("expected an empty grid to still be built")
		}
		if tr.count("List") != 1 {
			t.Errorf("expected a single List call, got %d", tr.count("List"))
		}
	})

	t.Run("bad month falls back", func(t *testing.T) {
		uc, _ := newUseCase(newFakeTransport())
		snap := uc.LoadList(context.Background(), event.ListInput{Month: "garbage"})
		if snap.Month.Label == "" || len(snap.Month.Weeks) != 6 {
			t.Errorf("expected current month grid, got %+v", snap.Month)
		}
	})
}

func TestCalendarEntries(t *testing.T) {
	uc, _ := newUseCase(newFakeTransport(meeting()))

	entries, err := uc.CalendarEntries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Title != "Meeting" || model.StringValue(entries[0].ExtendedProps.Location) != "Room 1" {
		t.Errorf("unexpected entries: %+v", entries)
	}

	tr := newFakeTransport()
	tr.listErr = errBackendDown
	uc, _ = newUseCase(tr)
	if _, err := uc.CalendarEntries(context.Background()); !isTransportError(err) {
		t.Errorf("expected transport error, got %v", err)
	}
}

func TestExportICS(t *testing.T) {
	uc, _ := newUseCase(newFakeTransport(meeting()))

	out, err := uc.ExportICS(tz.WithTimezone(context.Background(), "UTC"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"BEGIN:VCALENDAR", "SUMMARY:Meeting", "DTSTART:20240110T100000Z"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}
