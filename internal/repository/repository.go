package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rently-backend/internal/domain"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.InventoryItem, error)
	ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.InventoryItem, error)

	// ReserveIfAvailable flips the item to Reserved only when its current
	// status is neither Reserved nor Rented. The conditional UPDATE is what
	// serializes concurrent reservations: exactly one caller wins, the rest
	// get ErrConflict.
	ReserveIfAvailable(ctx context.Context, id, tenantID uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error
	IncrementTimesRented(ctx context.Context, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Booking, error)
	ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
	ListEndingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Rental, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Payment, error)
	// ListPending returns payments across all tenants whose status is not
	// Completed, for the periodic scan.
	ListPending(ctx context.Context) ([]domain.Payment, error)
}

type AnalyticsRepository interface {
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.AnalyticsLog, error)
	Insert(ctx context.Context, log *domain.AnalyticsLog) error
	Update(ctx context.Context, log *domain.AnalyticsLog) error
	Recent(ctx context.Context, tenantID uuid.UUID, limit int) ([]domain.AnalyticsLog, error)
	Summary(ctx context.Context, tenantID uuid.UUID) (*domain.AnalyticsSummary, error)
	RevenueTrend(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]domain.TrendPoint, error)
	BookingTrend(ctx context.Context, tenantID uuid.UUID, since time.Time) ([]domain.TrendPoint, error)
}

type AlertRepository interface {
	Create(ctx context.Context, alert *domain.Alert) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Alert, error)
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	// ExistsSince reports whether an identical tenant/type/message alert was
	// created at or after the given time. Used by the optional scan dedupe.
	ExistsSince(ctx context.Context, tenantID uuid.UUID, alertType, message string, since time.Time) (bool, error)
}
