package media

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ParseTime parses an RFC3339 (optionally fractional) timestamp.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with the album's JSON encoding: RFC3339Nano in
// UTC on the way out, RFC3339 strings or Unix milliseconds on the way in.
type Timestamp struct {
	time.Time
}

// Now returns the current time truncated to milliseconds, which is the
// precision every encoding of a Timestamp keeps.
func Now() Timestamp {
	return Timestamp{Time: time.Now().UTC().Truncate(time.Millisecond)}
}

// FromUnixMilli builds a Timestamp from milliseconds since the epoch.
func FromUnixMilli(ms int64) Timestamp {
	return Timestamp{Time: time.UnixMilli(ms).UTC()}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(strconv.Quote(FormatTime(t.Time))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if b[0] != '"' {
		var ms json.Number
		if err := json.Unmarshal(b, &ms); err != nil {
			return fmt.Errorf("media: timestamp: %w", err)
		}
		n, err := ms.Int64()
		if err != nil {
			f, ferr := ms.Float64()
			if ferr != nil {
				return fmt.Errorf("media: timestamp: %w", err)
			}
			n = int64(f)
		}
		*t = FromUnixMilli(n)
		return nil
	}
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := ParseTime(timestamp)
	if err != nil {
		return err
	}
	t.Time = parsed.UTC()
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// FormatTime renders v the way a Timestamp is persisted.
func FormatTime(v time.Time) string {
	return v.UTC().Format(time.RFC3339Nano)
}
