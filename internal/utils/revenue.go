package utils

import (
	"math"
	"time"
)

// RentalDays returns the number of billable days between start and end.
// Partial days round up, and a same-day (or inverted) span still bills a
// single day.
func RentalDays(start, end time.Time) int64 {
	hours := end.Sub(start).Hours()
	days := int64(math.Ceil(hours / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// RevenueCents computes booking revenue from the item's per-day price.
func RevenueCents(priceCents int64, start, end time.Time) int64 {
	return priceCents * RentalDays(start, end)
}
