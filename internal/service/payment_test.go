package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rently-backend/internal/domain"
	"rently-backend/internal/service"
)

type paymentFixture struct {
	paymentRepo *MockPaymentRepo
	rentalRepo  *MockRentalRepo
	alerts      *MockAlertService
	svc         service.PaymentService
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{
		paymentRepo: new(MockPaymentRepo),
		rentalRepo:  new(MockRentalRepo),
		alerts:      new(MockAlertService),
	}
	f.svc = service.NewPaymentService(f.paymentRepo, f.rentalRepo, f.alerts)
	return f
}

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("CompletedPaymentShiftsRentalBalance", func(t *testing.T) {
		f := newPaymentFixture()
		rental := &domain.Rental{ID: 7, TenantID: tenantID, AmountPaidCents: 0, OutstandingCents: 7500}
		f.rentalRepo.On("GetByID", ctx, int32(7)).Return(rental, nil)
		f.paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
		f.rentalRepo.On("Update", ctx, rental).Return(nil)
		f.alerts.On("Raise", ctx, tenantID, domain.AlertPaymentRecorded, mock.Anything).Return(&domain.Alert{}, nil)

		payment, err := f.svc.Create(ctx, &domain.Payment{
			TenantID:    tenantID,
			RentalID:    7,
			AmountCents: 2500,
			Method:      "Card",
			Status:      domain.PaymentStatusCompleted,
		})
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, payment.ID)
		assert.False(t, payment.PaymentDate.IsZero())
		assert.Equal(t, int64(2500), rental.AmountPaidCents)
		assert.Equal(t, int64(5000), rental.OutstandingCents)
	})

	t.Run("PendingPaymentLeavesRentalAlone", func(t *testing.T) {
		f := newPaymentFixture()
		rental := &domain.Rental{ID: 7, TenantID: tenantID, OutstandingCents: 7500}
		f.rentalRepo.On("GetByID", ctx, int32(7)).Return(rental, nil)
		f.paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
		f.alerts.On("Raise", ctx, tenantID, domain.AlertPaymentRecorded, mock.Anything).Return(&domain.Alert{}, nil)

		_, err := f.svc.Create(ctx, &domain.Payment{
			TenantID:    tenantID,
			RentalID:    7,
			AmountCents: 2500,
			Status:      domain.PaymentStatusPending,
		})
		assert.NoError(t, err)
		f.rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("StatusDefaultsToCompleted", func(t *testing.T) {
		f := newPaymentFixture()
		rental := &domain.Rental{ID: 7, TenantID: tenantID, OutstandingCents: 2500}
		f.rentalRepo.On("GetByID", ctx, int32(7)).Return(rental, nil)
		f.paymentRepo.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
		f.rentalRepo.On("Update", ctx, rental).Return(nil)
		f.alerts.On("Raise", ctx, tenantID, domain.AlertPaymentRecorded, mock.Anything).Return(&domain.Alert{}, nil)

		payment, err := f.svc.Create(ctx, &domain.Payment{TenantID: tenantID, RentalID: 7, AmountCents: 2500})
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
		assert.Equal(t, int64(0), rental.OutstandingCents)
	})

	t.Run("RentalFromAnotherTenant", func(t *testing.T) {
		f := newPaymentFixture()
		rental := &domain.Rental{ID: 7, TenantID: uuid.New()}
		f.rentalRepo.On("GetByID", ctx, int32(7)).Return(rental, nil)

		_, err := f.svc.Create(ctx, &domain.Payment{TenantID: tenantID, RentalID: 7, AmountCents: 2500})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("NonPositiveAmount", func(t *testing.T) {
		f := newPaymentFixture()
		_, err := f.svc.Create(ctx, &domain.Payment{TenantID: tenantID, RentalID: 7, AmountCents: 0})
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestPaymentService_Update(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	paymentID := uuid.New()

	t.Run("AmountChangeRebalancesRental", func(t *testing.T) {
		f := newPaymentFixture()
		payment := &domain.Payment{ID: paymentID, TenantID: tenantID, RentalID: 7, AmountCents: 2500, Status: domain.PaymentStatusCompleted}
		rental := &domain.Rental{ID: 7, TenantID: tenantID, AmountPaidCents: 2500, OutstandingCents: 5000}
		f.paymentRepo.On("GetByID", ctx, paymentID).Return(payment, nil)
		f.paymentRepo.On("Update", ctx, payment).Return(nil)
		f.rentalRepo.On("GetByID", ctx, int32(7)).Return(rental, nil)
		f.rentalRepo.On("Update", ctx, rental).Return(nil)

		updated, err := f.svc.Update(ctx, paymentID, 1000, domain.PaymentStatusCompleted, "partial refund")
		assert.NoError(t, err)
		assert.Equal(t, int64(1000), updated.AmountCents)
		assert.Equal(t, int64(1000), rental.AmountPaidCents)
		assert.Equal(t, int64(6500), rental.OutstandingCents)
	})

	t.Run("PendingToCompletedAppliesAmount", func(t *testing.T) {
		f := newPaymentFixture()
		payment := &domain.Payment{ID: paymentID, TenantID: tenantID, RentalID: 7, AmountCents: 2500, Status: domain.PaymentStatusPending}
		rental := &domain.Rental{ID: 7, TenantID: tenantID, OutstandingCents: 7500}
		f.paymentRepo.On("GetByID", ctx, paymentID).Return(payment, nil)
		f.paymentRepo.On("Update", ctx, payment).Return(nil)
		f.rentalRepo.On("GetByID", ctx, int32(7)).Return(rental, nil)
		f.rentalRepo.On("Update", ctx, rental).Return(nil)

		_, err := f.svc.Update(ctx, paymentID, 2500, domain.PaymentStatusCompleted, "")
		assert.NoError(t, err)
		assert.Equal(t, int64(2500), rental.AmountPaidCents)
		assert.Equal(t, int64(5000), rental.OutstandingCents)
	})

	t.Run("SameCompletedAmountSkipsRental", func(t *testing.T) {
		f := newPaymentFixture()
		payment := &domain.Payment{ID: paymentID, TenantID: tenantID, RentalID: 7, AmountCents: 2500, Status: domain.PaymentStatusCompleted}
		f.paymentRepo.On("GetByID", ctx, paymentID).Return(payment, nil)
		f.paymentRepo.On("Update", ctx, payment).Return(nil)

		_, err := f.svc.Update(ctx, paymentID, 2500, domain.PaymentStatusCompleted, "notes only")
		assert.NoError(t, err)
		f.rentalRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestPaymentService_Delete(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	paymentID := uuid.New()

	t.Run("CompletedPaymentRestoresOutstanding", func(t *testing.T) {
		f := newPaymentFixture()
		payment := &domain.Payment{ID: paymentID, TenantID: tenantID, RentalID: 7, AmountCents: 2500, Status: domain.PaymentStatusCompleted}
		rental := &domain.Rental{ID: 7, TenantID: tenantID, AmountPaidCents: 2500, OutstandingCents: 5000}
		f.paymentRepo.On("GetByID", ctx, paymentID).Return(payment, nil)
		f.paymentRepo.On("Delete", ctx, paymentID).Return(nil)
		f.rentalRepo.On("GetByID", ctx, int32(7)).Return(rental, nil)
		f.rentalRepo.On("Update", ctx, rental).Return(nil)

		assert.NoError(t, f.svc.Delete(ctx, paymentID))
		assert.Equal(t, int64(0), rental.AmountPaidCents)
		assert.Equal(t, int64(7500), rental.OutstandingCents)
	})

	t.Run("FailedPaymentSkipsRental", func(t *testing.T) {
		f := newPaymentFixture()
		payment := &domain.Payment{ID: paymentID, TenantID: tenantID, RentalID: 7, AmountCents: 2500, Status: domain.PaymentStatusFailed}
		f.paymentRepo.On("GetByID", ctx, paymentID).Return(payment, nil)
		f.paymentRepo.On("Delete", ctx, paymentID).Return(nil)

		assert.NoError(t, f.svc.Delete(ctx, paymentID))
		f.rentalRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
