package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalyticsLog is the derived revenue record for a booking. At most one row
// exists per booking id; every booking mutation re-upserts it.
type AnalyticsLog struct {
	ID           int32     `json:"id"`
	TenantID     uuid.UUID `json:"tenant_id"`
	BookingID    uuid.UUID `json:"booking_id"`
	CustomerName string    `json:"customer_name"`
	Category     string    `json:"category"`
	Condition    string    `json:"condition"`
	PriceCents   int64     `json:"price_cents"`
	RevenueCents int64     `json:"revenue_cents"`
	Status       string    `json:"status"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	LoggedAt     time.Time `json:"logged_at"`
}

type AnalyticsSummary struct {
	TotalRevenueCents int64 `json:"total_revenue_cents"`
	TotalBookings     int32 `json:"total_bookings"`
	ActiveBookings    int32 `json:"active_bookings"`
	CompletedBookings int32 `json:"completed_bookings"`
	CancelledBookings int32 `json:"cancelled_bookings"`
}

// TrendPoint is one calendar day of a trailing-window trend, ordered
// ascending by date. Value is revenue cents or booking count depending on
// the requested metric.
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Value int64     `json:"value"`
}
