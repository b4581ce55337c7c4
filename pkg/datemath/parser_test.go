package datemath_test

import (
	"testing"
	"time"

	"event-calendar/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Warsaw")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParseMonth(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 17, 15, 30, 0, 0, time.UTC)
	may := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "Empty", value: "", want: may},
		{name: "Today", value: "today", want: may},
		{name: "Next", value: "next", want: may.AddDate(0, 1, 0)},
		{name: "Prev", value: "prev", want: may.AddDate(0, -1, 0)},
		{name: "Explicit", value: "2024-01", want: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Padded", value: " 2023-12 ", want: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Invalid", value: "January", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseMonth(tt.value, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonth() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseMonth() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGridStart(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	may := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) // Wednesday

	got := parser.GridStart(may, time.Sunday)
	want := time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("GridStart(Sunday) got = %v, want %v", got, want)
	}

	got = parser.GridStart(may, time.Monday)
	want = time.Date(2024, 4, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("GridStart(Monday) got = %v, want %v", got, want)
	}

	sep := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC) // Sunday
	if got := parser.GridStart(sep, time.Sunday); !got.Equal(sep) {
		t.Errorf("GridStart on week start should be identity, got %v", got)
	}
}

func TestParseWeekday(t *testing.T) {
	wd, err := datemath.ParseWeekday("Monday")
	if err != nil || wd != time.Monday {
		t.Errorf("ParseWeekday(Monday) = %v, %v", wd, err)
	}
	if _, err := datemath.ParseWeekday("funday"); err == nil {
		t.Errorf("expected error for unknown weekday")
	}
}
