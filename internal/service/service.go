package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rently-backend/internal/domain"
)

// Fanout is the tenant-scoped publish primitive. The in-process hub
// satisfies it; a broker-backed implementation could be swapped in without
// touching the services.
type Fanout interface {
	Publish(tenantID, eventName string, payload any) error
}

// AvailabilityLedger is the single source of truth for item availability.
type AvailabilityLedger interface {
	// TryReserve atomically moves an Available/Maintenance item to Reserved.
	// Concurrent reservations on one item serialize so exactly one succeeds;
	// the rest get ErrConflict.
	TryReserve(ctx context.Context, itemID, tenantID uuid.UUID) error
	Release(ctx context.Context, itemID uuid.UUID) error
	MarkRented(ctx context.Context, itemID uuid.UUID) error
	MarkAvailable(ctx context.Context, itemID uuid.UUID) error
	MarkMaintenance(ctx context.Context, itemID uuid.UUID) error
	// ApplyBookingStatus runs the booking-status transition table:
	// Active -> Rented, Completed -> Available (+timesRented),
	// Cancelled -> Available. Other statuses leave the item untouched.
	ApplyBookingStatus(ctx context.Context, itemID uuid.UUID, status domain.BookingStatus) error
}

// BookingUpdate carries the partial fields of an update request; nil fields
// keep their current value.
type BookingUpdate struct {
	CustomerName  *string
	CustomerEmail *string
	StartDate     *time.Time
	EndDate       *time.Time
	Status        *domain.BookingStatus
}

type BookingService interface {
	Create(ctx context.Context, tenantID, itemID uuid.UUID, customerEmail string, start, end time.Time) (*domain.Booking, *domain.Rental, error)
	Update(ctx context.Context, bookingID uuid.UUID, upd BookingUpdate) (*domain.Booking, error)
	Delete(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, error)
	Get(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.Booking, error)
}

type AnalyticsService interface {
	// Upsert derives or refreshes the one analytics row keyed by the
	// booking id.
	Upsert(ctx context.Context, tenantID uuid.UUID, booking *domain.Booking) error
	Summary(ctx context.Context, tenantID uuid.UUID) (*domain.AnalyticsSummary, error)
	Trend(ctx context.Context, tenantID uuid.UUID, metric string) ([]domain.TrendPoint, error)
	Recent(ctx context.Context, tenantID uuid.UUID) ([]domain.AnalyticsLog, error)
}

type AlertService interface {
	// Raise persists the alert and then publishes it; a publish failure
	// never undoes persistence.
	Raise(ctx context.Context, tenantID uuid.UUID, alertType, message string) (*domain.Alert, error)
	// Scan runs one pass of the periodic sweep and reports how many alerts
	// it raised.
	Scan(ctx context.Context) (int, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.Alert, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

type PaymentService interface {
	Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error)
	Update(ctx context.Context, id uuid.UUID, amountCents int64, status domain.PaymentStatus, notes string) (*domain.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.Payment, error)
}

type RentalService interface {
	Get(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.Rental, error)
	Complete(ctx context.Context, id int32) (*domain.Rental, error)
}

type InventoryService interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	Get(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.InventoryItem, error)
}

type CustomerService interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error)
}

type TenantService interface {
	Register(ctx context.Context, tenant *domain.Tenant) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, to, customerName, itemName string, start, end time.Time) error
	SendBookingCompletion(ctx context.Context, to, customerName, itemName string) error
}
