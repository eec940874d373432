package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-03-04")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	want := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %s, want %s", got, want)
	}

	if _, err := ParseDate("04-03-2024"); err == nil {
		t.Error("ParseDate accepted a non-ISO date")
	}
}

func TestParseTimeToMinutes(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"9:30am", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeToMinutes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseTimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestCombineDateAndTime(t *testing.T) {
	got, err := CombineDateAndTime("2024-03-04", "09:15")
	if err != nil {
		t.Fatalf("CombineDateAndTime failed: %v", err)
	}
	want := time.Date(2024, time.March, 4, 9, 15, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}

	midnight, err := CombineDateAndTime("2024-03-04", "")
	if err != nil {
		t.Fatalf("CombineDateAndTime with empty time failed: %v", err)
	}
	if midnight.Hour() != 0 || midnight.Minute() != 0 {
		t.Errorf("empty time should yield midnight, got %s", midnight)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, time.March, 4, 18, 30, 0, 0, time.Local)
	if got := FormatDate(d); got != "2024-03-04" {
		t.Errorf("FormatDate = %q, want 2024-03-04", got)
	}
}
