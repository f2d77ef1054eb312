package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRentalDays(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("WholeDays", func(t *testing.T) {
		assert.Equal(t, int64(3), RentalDays(start, start.AddDate(0, 0, 3)))
	})

	t.Run("PartialDayRoundsUp", func(t *testing.T) {
		assert.Equal(t, int64(3), RentalDays(start, start.AddDate(0, 0, 2).Add(6*time.Hour)))
	})

	t.Run("SameDayCountsAsOne", func(t *testing.T) {
		assert.Equal(t, int64(1), RentalDays(start, start))
	})

	t.Run("EndBeforeStartClampsToOne", func(t *testing.T) {
		assert.Equal(t, int64(1), RentalDays(start, start.AddDate(0, 0, -2)))
	})
}

func TestRevenueCents(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("MultipliesPriceByDays", func(t *testing.T) {
		assert.Equal(t, int64(4500), RevenueCents(1500, start, start.AddDate(0, 0, 3)))
	})

	t.Run("ZeroDurationChargesOneDay", func(t *testing.T) {
		assert.Equal(t, int64(1500), RevenueCents(1500, start, start))
	})
}
