package report

import (
	"errors"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	cases := []struct {
		in  string
		out string
		ok  bool
	}{
		{"2024-03-10 18:30:00", "2024-03-10 18:30:00", true},
		{"2024-03-10T18:30:00", "2024-03-10 18:30:00", true},
		{"2024-03-10 18:30", "2024-03-10 18:30:00", true},
		{"10/03/2024 18:30:00", "2024-03-10 18:30:00", true},
		{"10/03/2024 18:30", "2024-03-10 18:30:00", true},
		{"2024-03-10", "2024-03-10 00:00:00", true},
		{"10/03/2024", "2024-03-10 00:00:00", true},
		// Excel serial date: 45361 = 2024-03-10
		{"45361", "2024-03-10 00:00:00", true},
		{"", "", false},
		{"   ", "", false},
		{"não é data", "", false},
	}
	for _, tc := range cases {
		got, err := ParseTimestamp(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %q, got %q (err=%v)", tc.in, tc.out, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidTimestamp) {
			t.Fatalf("%q expected ErrInvalidTimestamp, got %v", tc.in, err)
		}
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"12.5", 12.5, true},
		{"12,5", 12.5, true},
		{" 3 ", 3, true},
		{"", 0, true}, // absent numerics default to zero
		{"0", 0, true},
		{"abc", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseNumber(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %v, got %v (err=%v)", tc.in, tc.out, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("%q expected ErrInvalidNumber, got %v", tc.in, err)
		}
	}
}
