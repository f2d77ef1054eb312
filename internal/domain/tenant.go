package domain

import (
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	LogoURL      string    `json:"logo_url"`
	ThemeColor   string    `json:"theme_color"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	CreatedOn    time.Time `json:"created_on"`
}
