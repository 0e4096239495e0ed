package feed

import (
	"testing"
	"time"
)

func TestParseRFC2822(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"Mon, 13 Jan 2025 00:00:00 +0000", time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)},
		{"Mon, 3 Jul 2023 10:00:00 GMT", time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)},
		{"Mon, 03 Jul 2023 10:00:00 UT", time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)},
		{"Mon, 03 Jul 2023 06:00:00 EDT", time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)},
		{"Tue, 10 Jan 2023 09:00:00 PST", time.Date(2023, 1, 10, 17, 0, 0, 0, time.UTC)},
		{"03 Jul 2023 12:00:00 +0200", time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)},
		{"Mon, 03 Jul 2023 10:00 +0000", time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)},
		{"  Mon, 03 Jul 2023 10:00:00 +0000\n", time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)},
		{"Mon, 13 Jan 2025 15:04:31 CET", time.Date(2025, 1, 13, 14, 4, 31, 0, time.UTC)},
		{"Mon, 14 Jul 2025 15:04:31 cest", time.Date(2025, 7, 14, 13, 4, 31, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseRFC2822(tt.input)
		if err != nil {
			t.Errorf("ParseRFC2822(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.expected) {
			t.Errorf("ParseRFC2822(%q): expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestParseRFC3339(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2025-01-13T00:00:00+09:00", time.Date(2025, 1, 12, 15, 0, 0, 0, time.UTC)},
		{"2023-07-03T10:00:00Z", time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)},
		{"2023-07-03T10:00:00.5Z", time.Date(2023, 7, 3, 10, 0, 0, 500000000, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseRFC3339(tt.input)
		if err != nil {
			t.Errorf("ParseRFC3339(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.expected) {
			t.Errorf("ParseRFC3339(%q): expected %v, got %v", tt.input, tt.expected, got)
		}
	}
}

func TestParseDates_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "invalid-date-value"} {
		if _, err := ParseRFC2822(input); err == nil {
			t.Errorf("ParseRFC2822(%q): expected error", input)
		}
		if _, err := ParseRFC3339(input); err == nil {
			t.Errorf("ParseRFC3339(%q): expected error", input)
		}
	}
}

func TestParseRFC2822_UnknownZoneName(t *testing.T) {
	for _, input := range []string{
		"Mon, 13 Jan 2025 15:04:31 XYZ",
		"Mon, 13 Jan 2025 15:04:31 AEDT",
		"13 Jan 2025 15:04 HST",
	} {
		got, err := ParseRFC2822(input)
		if err == nil {
			t.Errorf("ParseRFC2822(%q): expected error, got %v", input, got)
		}
	}
}
