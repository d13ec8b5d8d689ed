package timeutil

import (
	"testing"
	"time"
)

func TestParseSpan(t *testing.T) {
	tests := map[string]struct {
		in   string
		want time.Duration
	}{
		"seconds":   {in: "4s", want: 4 * time.Second},
		"composite": {in: "1w2d6h30m", want: (7*24+2*24+6)*time.Hour + 30*time.Minute},
		"words":     {in: "2 weeks", want: 14 * 24 * time.Hour},
		"spaced":    {in: "1m 30s", want: 90 * time.Second},
		"millis":    {in: "1500ms", want: 1500 * time.Millisecond},
		"upper":     {in: "3D", want: 72 * time.Hour},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSpan(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseSpan(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseSpanInvalid(t *testing.T) {
	for _, in := range []string{"", "noop", "0s", "5 fortnights", "4s later"} {
		if _, err := ParseSpan(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatSpan(t *testing.T) {
	tests := map[time.Duration]string{
		0:                              "0s",
		4 * time.Second:                "4s",
		90 * time.Second:               "1m30s",
		9 * 24 * time.Hour:             "1w2d",
		1500 * time.Millisecond:        "1s500ms",
		7*24*time.Hour + 5*time.Minute: "1w5m",
	}
	for in, want := range tests {
		if got := FormatSpan(in); got != want {
			t.Fatalf("FormatSpan(%v) = %q, want %q", in, got, want)
		}
	}
}
