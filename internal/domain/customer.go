package domain

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID            uuid.UUID `json:"id"`
	TenantID      uuid.UUID `json:"tenant_id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	IDDocumentURL string    `json:"id_document_url,omitempty"`
	HasUnpaidDues bool      `json:"has_unpaid_dues"`
	CreatedOn     time.Time `json:"created_on"`
}
