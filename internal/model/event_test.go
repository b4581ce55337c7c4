package model_test

import (
	"testing"
	"time"

	"event-calendar/internal/model"
)

func TestParseDateTime(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name    string
		value   string
		loc     *time.Location
		want    time.Time
		wantErr bool
	}{
		{
			name:  "Naive seconds",
			value: "2024-01-01T10:00:00",
			loc:   warsaw,
			want:  time.Date(2024, 1, 1, 10, 0, 0, 0, warsaw),
		},
		{
			name:  "Naive minutes",
			value: "2024-01-01T10:00",
			loc:   warsaw,
			want:  time.Date(2024, 1, 1, 10, 0, 0, 0, warsaw),
		},
		{
			name:  "UTC designator keeps offset",
			value: "2024-01-01T10:00:00Z",
			loc:   warsaw,
			want:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "Nil location means UTC",
			value: "2024-01-01T10:00:00",
			want:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:    "Garbage",
			value:   "tomorrow at noon",
			wantErr: true,
		},
		{
			name:    "Empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseDateTime(tt.value, tt.loc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDateTime() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDateTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventHelpers(t *testing.T) {
	e := model.Event{
		ID:            42,
		Title:         "Standup",
		StartDateTime: "2024-01-01T10:00:00",
		EndDateTime:   "2024-01-01T10:15:00",
		Location:      model.StringPtr("Room 1"),
	}

	if e.IDString() != "42" {
		t.Errorf("unexpected id string: %s", e.IDString())
	}

	if model.StringPtr("") != nil {
		t.Errorf("expected nil for empty string")
	}
	if model.StringValue(nil) != "" {
		t.Errorf("expected empty value for nil")
	}
	if got := model.FormatDateTime(time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)); got != "2024-03-04T05:06:07" {
		t.Errorf("unexpected format: %s", got)
	}
}

func TestNormalizeDateTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-01T10:00", "2024-01-01T10:00:00"},
		{"2024-01-01T10:00:30", "2024-01-01T10:00:30"},
		{" 2024-01-01 10:00 ", "2024-01-01T10:00:00"},
		{"2024-01-01T10:00:00Z", "2024-01-01T10:00:00Z"},
		{"tomorrow", "tomorrow"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := model.NormalizeDateTime(tt.in); got != tt.want {
			t.Errorf("NormalizeDateTime(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
