package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpiryThreshold(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	in := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}

	cases := []struct {
		name      string
		expiresAt *time.Time
		tier      int
		ok        bool
	}{
		{"no expiry on record", nil, 0, false},
		{"already expired", in(-24 * time.Hour), 0, false},
		{"expires right now", &now, 0, false},
		{"far out", in(45 * 24 * time.Hour), 0, false},
		{"just over a month", in(31 * 24 * time.Hour), 0, false},
		{"thirty days", in(30 * 24 * time.Hour), 30, true},
		{"twenty days", in(20 * 24 * time.Hour), 30, true},
		{"fourteen days", in(14 * 24 * time.Hour), 14, true},
		{"ten days", in(10 * 24 * time.Hour), 14, true},
		{"five days", in(5 * 24 * time.Hour), 7, true},
		{"tomorrow", in(24 * time.Hour), 1, true},
		{"twelve hours", in(12 * time.Hour), 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier, ok := ExpiryThreshold(now, tc.expiresAt)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.tier, tier)
		})
	}
}
