package duration_test

import (
	"rentdesk/shared/duration"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var delivery = time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

func TestRentalDays(t *testing.T) {
	tests := []struct {
		name      string
		elapsed   time.Duration
		tolerance int
		expected  int
	}{
		{name: "exact days", elapsed: 96 * time.Hour, tolerance: 1, expected: 4},
		{name: "excess within tolerance", elapsed: 96*time.Hour + 45*time.Minute, tolerance: 1, expected: 4},
		{name: "excess equal to tolerance", elapsed: 97 * time.Hour, tolerance: 1, expected: 4},
		{name: "excess above tolerance", elapsed: 97*time.Hour + time.Minute, tolerance: 1, expected: 5},
		{name: "larger tolerance absorbs excess", elapsed: 100 * time.Hour, tolerance: 4, expected: 4},
		{name: "zero tolerance", elapsed: 72*time.Hour + time.Minute, tolerance: 0, expected: 4},
		{name: "short rental is one day", elapsed: 30 * time.Minute, tolerance: 1, expected: 1},
		{name: "same instant", elapsed: 0, tolerance: 1, expected: 0},
		{name: "collection before delivery", elapsed: -5 * time.Hour, tolerance: 1, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := duration.RentalDays(delivery, delivery.Add(tt.elapsed), tt.tolerance)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRentalDaysToleranceNeverIncreasesDays(t *testing.T) {
	for minutes := 0; minutes <= 10*24*60; minutes += 37 {
		collection := delivery.Add(time.Duration(minutes) * time.Minute)
		previous := duration.RentalDays(delivery, collection, 0)

		assert.GreaterOrEqual(t, previous, 0)

		for tolerance := 1; tolerance <= 30; tolerance++ {
			current := duration.RentalDays(delivery, collection, tolerance)

			assert.GreaterOrEqual(t, current, 0)
			assert.LessOrEqual(t, current, previous, "minutes=%d tolerance=%d", minutes, tolerance)

			previous = current
		}
	}
}

func TestDescribe(t *testing.T) {
	summary := duration.Describe(delivery, delivery.Add(3*24*time.Hour+5*time.Hour+30*time.Minute), duration.DefaultToleranceHours)

	assert.Equal(t, 4, summary.Days)
	assert.Equal(t, "4 days", summary.Total)
	assert.Equal(t, "3 days 5 hours 30 minutes", summary.Precise)
}

func TestPrecise(t *testing.T) {
	assert.Equal(t, "0 minutes", duration.Precise(0))
	assert.Equal(t, "0 minutes", duration.Precise(-time.Hour))
	assert.Equal(t, "1 day", duration.Precise(24*time.Hour))
	assert.Equal(t, "1 hour 1 minute", duration.Precise(61*time.Minute))
	assert.Equal(t, "2 days 15 minutes", duration.Precise(48*time.Hour+15*time.Minute))
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "0 days", duration.FormatDays(0))
	assert.Equal(t, "1 day", duration.FormatDays(1))
	assert.Equal(t, "12 days", duration.FormatDays(12))
}
