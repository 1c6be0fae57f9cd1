package services

import (
	"testing"
	"time"
)

func TestParsePaidAt(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect time.Time
		ok     bool
	}{
		{"iso datetime", "2024-05-01 14:30:00", time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC), true},
		{"iso date", "2024-05-01", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"dutch datetime", "01-05-2024 14:30:00", time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC), true},
		{"dutch date", "01-05-2024", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"surrounding whitespace", "  2024-05-01  ", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "last tuesday", time.Time{}, false},
		{"partial", "2024-05", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePaidAt(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParsePaidAt(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if !got.Equal(tt.expect) {
				t.Errorf("ParsePaidAt(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestParsePaidAt_FirstFormatWins(t *testing.T) {
	// "05-04-2024" is ambiguous between the two date layouts; the
	// day-month-year layout is tried after the ISO ones and must win
	// only when ISO parsing fails.
	got, ok := ParsePaidAt("05-04-2024")
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	want := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParsePaidAt = %v, want %v", got, want)
	}
}

func TestParsePaidAt_NoDateSortsEarliest(t *testing.T) {
	noDate, _ := ParsePaidAt("")
	dated, _ := ParsePaidAt("1970-01-01")
	if !noDate.Before(dated) {
		t.Errorf("the no-date sentinel must sort before any parsed date")
	}
}
