package timezone_test

import (
	"testing"
	"time"

	"adscape/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		expected string
	}{
		{name: "blank falls back to UTC", zone: "", expected: "UTC"},
		{name: "unknown falls back to UTC", zone: "Mars/Olympus", expected: "UTC"},
		{name: "known zone", zone: "Asia/Jakarta", expected: "Asia/Jakarta"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.Load(tt.zone).String())
		})
	}
}

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.Equal(t, timezone.Location(), now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestFormat(t *testing.T) {
	instant := time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, instant.In(timezone.Location()).Format(time.DateOnly), timezone.Format(instant, time.DateOnly))
}
