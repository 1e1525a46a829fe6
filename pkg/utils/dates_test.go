package utils

import (
	"testing"
	"time"
)

func TestNormalizeDateFormats(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"01/12/2023", time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2019-01-02", time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		got := NormalizeDate(tc.in)
		if !got.Equal(tc.want) {
			t.Errorf("NormalizeDate(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDateFallbackToNow(t *testing.T) {
	// Unparsable input falls back to the current time, including dates that
	// are well-formed but not valid calendar dates.
	for _, in := range []string{"", "soon", "31/02/2024", "2024-13-40", "15.03.2024"} {
		got := NormalizeDate(in)
		age := time.Since(got)
		if age < 0 || age > 2*time.Second {
			t.Errorf("NormalizeDate(%q): got %v, want approximately now", in, got)
		}
	}
}

func TestFormatDisplayDate(t *testing.T) {
	if got := FormatDisplayDate("2024-03-15"); got != "15 Mar 2024" {
		t.Errorf("FormatDisplayDate: got %q, want %q", got, "15 Mar 2024")
	}
	if got := FormatDisplayDate("05/11/2023"); got != "05 Nov 2023" {
		t.Errorf("FormatDisplayDate: got %q, want %q", got, "05 Nov 2023")
	}
}
