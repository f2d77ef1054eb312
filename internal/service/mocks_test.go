package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"rently-backend/internal/domain"
	"rently-backend/internal/service"
)

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) Create(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockInventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryRepo) Update(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockInventoryRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryRepo) ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}
func (m *MockInventoryRepo) ReserveIfAvailable(ctx context.Context, id, tenantID uuid.UUID) error {
	args := m.Called(ctx, id, tenantID)
	return args.Error(0)
}
func (m *MockInventoryRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockInventoryRepo) IncrementTimesRented(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListEndingBetween(ctx context.Context, from, to time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Rental, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*domain.Customer, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Update(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListPending(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockAlertRepo
type MockAlertRepo struct {
	mock.Mock
}

func (m *MockAlertRepo) Create(ctx context.Context, alert *domain.Alert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}
func (m *MockAlertRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alert, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alert), args.Error(1)
}
func (m *MockAlertRepo) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAlertRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]domain.Alert, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Alert), args.Error(1)
}
func (m *MockAlertRepo) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAlertRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAlertRepo) ExistsSince(ctx context.Context, tenantID uuid.UUID, alertType, message string, since time.Time) (bool, error) {
	args := m.Called(ctx, tenantID, alertType, message, since)
	return args.Bool(0), args.Error(1)
}

// MockAnalyticsService
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) Upsert(ctx context.Context, tenantID uuid.UUID, booking *domain.Booking) error {
	args := m.Called(ctx, tenantID, booking)
	return args.Error(0)
}
func (m *MockAnalyticsService) Summary(ctx context.Context, tenantID uuid.UUID) (*domain.AnalyticsSummary, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsSummary), args.Error(1)
}
func (m *MockAnalyticsService) Trend(ctx context.Context, tenantID uuid.UUID, metric string) ([]domain.TrendPoint, error) {
	args := m.Called(ctx, tenantID, metric)
	return args.Get(0).([]domain.TrendPoint), args.Error(1)
}
func (m *MockAnalyticsService) Recent(ctx context.Context, tenantID uuid.UUID) ([]domain.AnalyticsLog, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.AnalyticsLog), args.Error(1)
}

// MockAlertService
type MockAlertService struct {
	mock.Mock
}

func (m *MockAlertService) Raise(ctx context.Context, tenantID uuid.UUID, alertType, message string) (*domain.Alert, error) {
	args := m.Called(ctx, tenantID, alertType, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Alert), args.Error(1)
}
func (m *MockAlertService) Scan(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
func (m *MockAlertService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Alert, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Alert), args.Error(1)
}
func (m *MockAlertService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockAlertService) Clear(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, to, customerName, itemName string, start, end time.Time) error {
	args := m.Called(ctx, to, customerName, itemName, start, end)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCompletion(ctx context.Context, to, customerName, itemName string) error {
	args := m.Called(ctx, to, customerName, itemName)
	return args.Error(0)
}

// MockFanout
type MockFanout struct {
	mock.Mock
}

func (m *MockFanout) Publish(tenantID, eventName string, payload any) error {
	args := m.Called(tenantID, eventName, payload)
	return args.Error(0)
}

// MockLedger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) TryReserve(ctx context.Context, itemID, tenantID uuid.UUID) error {
	args := m.Called(ctx, itemID, tenantID)
	return args.Error(0)
}
func (m *MockLedger) Release(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}
func (m *MockLedger) MarkRented(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}
func (m *MockLedger) MarkAvailable(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}
func (m *MockLedger) MarkMaintenance(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}
func (m *MockLedger) ApplyBookingStatus(ctx context.Context, itemID uuid.UUID, status domain.BookingStatus) error {
	args := m.Called(ctx, itemID, status)
	return args.Error(0)
}

var _ service.AvailabilityLedger = (*MockLedger)(nil)
var _ service.Fanout = (*MockFanout)(nil)
