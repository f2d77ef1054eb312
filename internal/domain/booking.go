package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusReserved  BookingStatus = "Reserved"
	BookingStatusActive    BookingStatus = "Active"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type Booking struct {
	ID              uuid.UUID `json:"id"`
	TenantID        uuid.UUID `json:"tenant_id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	InventoryItemID uuid.UUID `json:"inventory_item_id"`
	// Customer name/email are snapshotted at creation time so booking rows
	// stay readable even if the customer record changes later.
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	Status        BookingStatus `json:"status"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	CreatedOn     time.Time     `json:"created_on"`
}
