package domain

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
)

type Payment struct {
	ID          uuid.UUID     `json:"id"`
	TenantID    uuid.UUID     `json:"tenant_id"`
	RentalID    int32         `json:"rental_id"`
	AmountCents int64         `json:"amount_cents"`
	Method      string        `json:"method"` // e.g. Cash, Card, UPI
	Status      PaymentStatus `json:"status"`
	PaymentDate time.Time     `json:"payment_date"`
	Notes       string        `json:"notes,omitempty"`
	InvoiceURL  string        `json:"invoice_url,omitempty"`
}
