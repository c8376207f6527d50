// Package duration turns a delivery/collection pair into rental days and readable durations.
package duration

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultToleranceHours = 1

	hoursPerDay = 24
)

type Summary struct {
	Days    int    `json:"days"`
	Total   string `json:"total"`
	Precise string `json:"precise"`
}

// RentalDays counts full rental days between delivery and collection. A partial
// day is billed as a full one only when it exceeds toleranceHours. Negative
// tolerance is treated as zero.
func RentalDays(delivery, collection time.Time, toleranceHours int) int {
	elapsed := collection.Sub(delivery)
	if elapsed <= 0 {
		return 0
	}

	if toleranceHours < 0 {
		toleranceHours = 0
	}

	day := hoursPerDay * time.Hour
	days := int(elapsed / day)
	excess := elapsed - time.Duration(days)*day

	if excess > time.Duration(toleranceHours)*time.Hour {
		days++
	}

	if days == 0 {
		days = 1
	}

	return days
}

func Describe(delivery, collection time.Time, toleranceHours int) Summary {
	days := RentalDays(delivery, collection, toleranceHours)

	return Summary{
		Days:    days,
		Total:   FormatDays(days),
		Precise: Precise(collection.Sub(delivery)),
	}
}

func FormatDays(days int) string {
	return plural(days, "day")
}

// Precise renders elapsed as "3 days 5 hours 30 minutes", skipping zero parts.
func Precise(elapsed time.Duration) string {
	if elapsed < time.Minute {
		return plural(0, "minute")
	}

	totalMinutes := int(elapsed / time.Minute)
	days := totalMinutes / (hoursPerDay * 60)
	hours := totalMinutes / 60 % hoursPerDay
	minutes := totalMinutes % 60

	parts := make([]string, 0, 3)

	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}

	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}

	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}

	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
