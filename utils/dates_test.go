package utils_test

import (
	"testing"
	"time"

	"fieldpro-backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestRelativeDayLabel(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "same_day", t: now.Add(-2 * time.Hour), want: "Today"},
		{name: "yesterday", t: now.AddDate(0, 0, -1), want: "Yesterday"},
		{name: "three_days", t: now.AddDate(0, 0, -3), want: "3 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.RelativeDayLabel(tt.t, now))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, 6, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, utils.DaysBetween(start, end), "calendar days, not 24h periods")
}
