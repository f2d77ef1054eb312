package domain

import (
	"time"

	"github.com/google/uuid"
)

type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "Available"
	ItemStatusReserved    ItemStatus = "Reserved"
	ItemStatusRented      ItemStatus = "Rented"
	ItemStatusMaintenance ItemStatus = "Maintenance"
)

type InventoryItem struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenant_id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Condition   string     `json:"condition"`
	Status      ItemStatus `json:"status"`
	// Price per rental day, in cents.
	PriceCents  int64     `json:"price_cents"`
	TimesRented int32     `json:"times_rented"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}
