package media

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := map[string]struct {
		in   string
		want time.Time
	}{
		"rfc3339":      {in: `"2025-03-03T12:00:00Z"`, want: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)},
		"fractional":   {in: `"2025-03-03T12:00:00.5Z"`, want: time.Date(2025, 3, 3, 12, 0, 0, 500000000, time.UTC)},
		"unix millis":  {in: `1741003200000`, want: time.UnixMilli(1741003200000).UTC()},
		"empty string": {in: `""`, want: time.Time{}},
		"null":         {in: `null`, want: time.Time{}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tc.in), &ts); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !ts.Equal(tc.want) {
				t.Fatalf("got %v, want %v", ts.Time, tc.want)
			}
		})
	}
}

func TestTimestampMarshalZero(t *testing.T) {
	b, err := json.Marshal(Timestamp{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("expected empty string, got %s", b)
	}
}

func TestParseKind(t *testing.T) {
	for raw, want := range map[string]Kind{"": KindPhoto, "Photo": KindPhoto, "video": KindVideo, "youtube": KindVideo} {
		got, err := ParseKind(raw)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q) = %q, want %q", raw, got, want)
		}
	}
	if _, err := ParseKind("gif"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
