package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rently-backend/internal/domain"
	"rently-backend/internal/logger"
	"rently-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	rentalRepo  repository.RentalRepository
	alerts      AlertService
}

func NewPaymentService(paymentRepo repository.PaymentRepository, rentalRepo repository.RentalRepository, alerts AlertService) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		rentalRepo:  rentalRepo,
		alerts:      alerts,
	}
}

func (s *paymentService) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	if payment.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}

	rental, err := s.rentalRepo.GetByID(ctx, payment.RentalID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if rental.TenantID != payment.TenantID {
		return nil, ErrNotFound
	}

	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	if payment.Status == "" {
		payment.Status = domain.PaymentStatusCompleted
	}
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = time.Now().UTC()
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	if payment.Status == domain.PaymentStatusCompleted {
		if err := s.applyToRental(ctx, payment.RentalID, payment.AmountCents); err != nil {
			return nil, err
		}
	}

	msg := fmt.Sprintf("Payment of %.2f recorded for rental #%d.", float64(payment.AmountCents)/100, payment.RentalID)
	if _, err := s.alerts.Raise(ctx, payment.TenantID, domain.AlertPaymentRecorded, msg); err != nil {
		logger.SideEffectFailed("raise_alert", err, "payment_id", payment.ID)
	}

	return payment, nil
}

func (s *paymentService) Update(ctx context.Context, id uuid.UUID, amountCents int64, status domain.PaymentStatus, notes string) (*domain.Payment, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	// Only completed payments count toward the rental's paid total, so the
	// adjustment is the difference between the old and new completed amounts.
	var delta int64
	if payment.Status == domain.PaymentStatusCompleted {
		delta -= payment.AmountCents
	}
	if status == domain.PaymentStatusCompleted {
		delta += amountCents
	}

	payment.AmountCents = amountCents
	payment.Status = status
	payment.Notes = notes
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, mapRepoErr(err)
	}

	if delta != 0 {
		if err := s.applyToRental(ctx, payment.RentalID, delta); err != nil {
			return nil, err
		}
	}
	return payment, nil
}

func (s *paymentService) Delete(ctx context.Context, id uuid.UUID) error {
	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}

	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return mapRepoErr(err)
	}

	if payment.Status == domain.PaymentStatusCompleted {
		if err := s.applyToRental(ctx, payment.RentalID, -payment.AmountCents); err != nil {
			return err
		}
	}
	return nil
}

func (s *paymentService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Payment, error) {
	return s.paymentRepo.ListByTenant(ctx, tenantID)
}

// applyToRental shifts the rental's paid/outstanding split by delta cents
// while keeping their sum, the rental's total, unchanged.
func (s *paymentService) applyToRental(ctx context.Context, rentalID int32, delta int64) error {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return mapRepoErr(err)
	}

	total := rental.OutstandingCents + rental.AmountPaidCents
	rental.AmountPaidCents += delta
	rental.OutstandingCents = total - rental.AmountPaidCents

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return fmt.Errorf("failed to update rental balance: %w", err)
	}
	return nil
}
