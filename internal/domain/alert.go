package domain

import (
	"time"

	"github.com/google/uuid"
)

// Alert types raised by the core. The column is free-form, so collaborators
// may write ad-hoc types (success/info/warning) as well.
const (
	AlertBookingCreated   = "BookingCreated"
	AlertBookingCompleted = "BookingCompleted"
	AlertBookingCancelled = "BookingCancelled"
	AlertBookingDeleted   = "BookingDeleted"
	AlertPendingPayment   = "PendingPayment"
	AlertUpcomingBooking  = "UpcomingBooking"
	AlertUpcomingReturn   = "UpcomingReturn"
	AlertMaintenanceItem  = "MaintenanceItem"
	AlertPaymentRecorded  = "PaymentRecorded"
)

type Alert struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
