// Package timeutil parses the short spans used on the command line, such as
// "4s" for a slideshow interval or "2w" for how far back to list items.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	day  = 24 * time.Hour
	week = 7 * day
)

var (
	segment = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	units   = map[string]time.Duration{}
)

func init() {
	for d, names := range map[time.Duration][]string{
		time.Millisecond: {"ms"},
		time.Second:      {"s", "sec", "secs", "second", "seconds"},
		time.Minute:      {"m", "min", "mins", "minute", "minutes"},
		time.Hour:        {"h", "hr", "hrs", "hour", "hours"},
		day:              {"d", "day", "days"},
		week:             {"w", "wk", "wks", "week", "weeks"},
	} {
		for _, n := range names {
			units[n] = d
		}
	}
}

// ParseSpan reads a span made of number+unit segments, e.g. "90s", "1m30s"
// or "2 weeks". The total must be positive.
func ParseSpan(input string) (time.Duration, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return 0, fmt.Errorf("empty span")
	}

	var total time.Duration
	for len(remaining) > 0 {
		m := segment.FindStringSubmatch(remaining)
		if len(m) != 3 {
			return 0, fmt.Errorf("invalid span segment %q", strings.TrimSpace(remaining))
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid span value %q: %w", m[1], err)
		}
		unit, ok := units[m[2]]
		if !ok {
			return 0, fmt.Errorf("unsupported span unit %q", m[2])
		}
		total += time.Duration(n) * unit
		remaining = strings.TrimSpace(remaining[len(m[0]):])
	}

	if total <= 0 {
		return 0, fmt.Errorf("span must be greater than zero")
	}
	return total, nil
}

// FormatSpan renders d with the largest units first, e.g. "1w2d" or "4s".
func FormatSpan(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	var b strings.Builder
	for _, u := range []struct {
		label string
		value time.Duration
	}{
		{"w", week},
		{"d", day},
		{"h", time.Hour},
		{"m", time.Minute},
		{"s", time.Second},
		{"ms", time.Millisecond},
	} {
		if d < u.value {
			continue
		}
		n := d / u.value
		d -= n * u.value
		fmt.Fprintf(&b, "%d%s", n, u.label)
	}
	if b.Len() == 0 {
		return "0s"
	}
	return b.String()
}
