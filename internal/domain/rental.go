package domain

import (
	"time"

	"github.com/google/uuid"
)

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "Active"
	RentalStatusCompleted RentalStatus = "Completed"
	RentalStatusCancelled RentalStatus = "Cancelled"
)

// Rental is the financial record paired with a booking. It mirrors the
// booking lifecycle but is independently mutable and survives booking
// deletion.
type Rental struct {
	ID         int32        `json:"id"`
	TenantID   uuid.UUID    `json:"tenant_id"`
	ItemID     uuid.UUID    `json:"item_id"`
	CustomerID uuid.UUID    `json:"customer_id"`
	StartDate  time.Time    `json:"start_date"`
	DueDate    time.Time    `json:"due_date"`
	ReturnDate *time.Time   `json:"return_date,omitempty"`
	Status     RentalStatus `json:"status"`
	// PriceCents is the per-day price snapshotted from the item.
	PriceCents       int64 `json:"price_cents"`
	AmountPaidCents  int64 `json:"amount_paid_cents"`
	OutstandingCents int64 `json:"outstanding_cents"`
}
