package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "just now"},
		{"sub_second", 500 * time.Millisecond, "just now"},
		{"negative", -time.Hour, "just now"},
		{"one_second", time.Second, "1 second"},
		{"seconds", 59 * time.Second, "59 seconds"},
		{"one_minute", time.Minute, "1 minute"},
		{"one_hour", time.Hour, "1 hour"},
		{"mixed", time.Hour + 2*time.Minute + 5*time.Second, "1 hour, 2 minutes, 5 seconds"},
		{"day_and_hours", 26 * time.Hour, "1 day, 2 hours"},
		{"all_units", 24*time.Hour + time.Hour + time.Minute + time.Second, "1 day, 1 hour, 1 minute, 1 second"},
		{"one_month", 30 * 24 * time.Hour, "1 month"},
		{"one_year", 365 * 24 * time.Hour, "1 year"},
		{"year_month_days", 397 * 24 * time.Hour, "1 year, 1 month, 2 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.d))
		})
	}
}

func TestDuration_SkipsZeroUnits(t *testing.T) {
	// 2 days and 30 seconds: hours and minutes are zero and must not appear.
	d := 48*time.Hour + 30*time.Second
	assert.Equal(t, "2 days, 30 seconds", Duration(d))
}
