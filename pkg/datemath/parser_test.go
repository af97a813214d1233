package datemath

import (
	"testing"
	"time"
)

func TestParseOffset(t *testing.T) {
	cases := []struct {
		token string
		want  time.Duration
		ok    bool
	}{
		{"2h", 2 * time.Hour, true},
		{"30m", 30 * time.Minute, true},
		{"1d", 24 * time.Hour, true},
		{"3d", 72 * time.Hour, true},
		{"45min", 45 * time.Minute, true},
		{"2 hours", 2 * time.Hour, true},
		{"1 day", 24 * time.Hour, true},
		{"2H", 2 * time.Hour, true},
		{" 30m ", 30 * time.Minute, true},
		{"", 0, false},
		{"2", 0, false},
		{"0m", 0, false},
		{"-2h", 0, false},
		{"2w", 0, false},
		{"2 months", 0, false},
		{"h", 0, false},
		{"soon", 0, false},
	}

	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			got, ok := ParseOffset(c.token)
			if ok != c.ok {
				t.Fatalf("ParseOffset(%q) ok = %v, want %v", c.token, ok, c.ok)
			}
			if got != c.want {
				t.Errorf("ParseOffset(%q) = %v, want %v", c.token, got, c.want)
			}
		})
	}
}

func TestParseOffsetMilliseconds(t *testing.T) {
	// The reschedule flows operate on millisecond offsets.
	cases := map[string]int64{
		"2h":  7200000,
		"30m": 1800000,
		"1d":  86400000,
	}
	for token, wantMs := range cases {
		d, ok := ParseOffset(token)
		if !ok {
			t.Fatalf("ParseOffset(%q) unexpectedly failed", token)
		}
		if d.Milliseconds() != wantMs {
			t.Errorf("ParseOffset(%q) = %dms, want %dms", token, d.Milliseconds(), wantMs)
		}
	}
}
