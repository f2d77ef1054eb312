package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rently-backend/internal/config"
	"rently-backend/internal/domain"
	"rently-backend/internal/fanout"
	"rently-backend/internal/logger"
	"rently-backend/internal/repository"
)

type alertService struct {
	alertRepo   repository.AlertRepository
	bookingRepo repository.BookingRepository
	paymentRepo repository.PaymentRepository
	itemRepo    repository.InventoryRepository
	hub         Fanout
	cfg         config.AlertsConfig
	now         func() time.Time
}

func NewAlertService(
	alertRepo repository.AlertRepository,
	bookingRepo repository.BookingRepository,
	paymentRepo repository.PaymentRepository,
	itemRepo repository.InventoryRepository,
	hub Fanout,
	cfg config.AlertsConfig,
) AlertService {
	return &alertService{
		alertRepo:   alertRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		itemRepo:    itemRepo,
		hub:         hub,
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Raise persists the alert first and then pushes it to the tenant's live
// subscribers. The push is best-effort; a failed publish leaves the stored
// alert in place for the next poll.
func (s *alertService) Raise(ctx context.Context, tenantID uuid.UUID, alertType, message string) (*domain.Alert, error) {
	if alertType == "" || message == "" {
		return nil, fmt.Errorf("%w: alert type and message are required", ErrValidation)
	}

	alert := &domain.Alert{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Type:      alertType,
		Message:   message,
		IsRead:    false,
		CreatedAt: s.now(),
	}
	if err := s.alertRepo.Create(ctx, alert); err != nil {
		return nil, fmt.Errorf("failed to store alert: %w", err)
	}

	if err := s.hub.Publish(tenantID.String(), fanout.EventReceiveAlert, alert); err != nil {
		logger.SideEffectFailed("publish_alert", err, "alert_id", alert.ID, "tenant_id", tenantID)
	}
	return alert, nil
}

// Scan runs one pass of the periodic sweep: prune aged alerts, then raise
// PendingPayment, UpcomingBooking, UpcomingReturn and MaintenanceItem
// candidates. One bad candidate never stops the rest of the pass.
func (s *alertService) Scan(ctx context.Context) (int, error) {
	now := s.now()
	raised := 0

	cutoff := now.AddDate(0, 0, -s.cfg.RetentionDays)
	if pruned, err := s.alertRepo.DeleteOlderThan(ctx, cutoff); err != nil {
		logger.Error("Failed to prune aged alerts", "error", err)
	} else if pruned > 0 {
		logger.Info("Pruned aged alerts", "count", pruned, "cutoff", cutoff)
	}

	if payments, err := s.paymentRepo.ListPending(ctx); err != nil {
		logger.Error("Scan failed to list pending payments", "error", err)
	} else {
		for _, p := range payments {
			msg := fmt.Sprintf("Payment of %.2f for rental #%d is still pending.", float64(p.AmountCents)/100, p.RentalID)
			if s.raiseFromScan(ctx, now, p.TenantID, domain.AlertPendingPayment, msg) {
				raised++
			}
		}
	}

	horizon := now.Add(time.Duration(s.cfg.LookaheadHrs) * time.Hour)

	if bookings, err := s.bookingRepo.ListStartingBetween(ctx, now, horizon); err != nil {
		logger.Error("Scan failed to list upcoming bookings", "error", err)
	} else {
		for _, b := range bookings {
			msg := fmt.Sprintf("Booking for %s starts on %s.", b.CustomerName, b.StartDate.Format("02 Jan 2006"))
			if s.raiseFromScan(ctx, now, b.TenantID, domain.AlertUpcomingBooking, msg) {
				raised++
			}
		}
	}

	if bookings, err := s.bookingRepo.ListEndingBetween(ctx, now, horizon); err != nil {
		logger.Error("Scan failed to list upcoming returns", "error", err)
	} else {
		for _, b := range bookings {
			msg := fmt.Sprintf("Booking for %s is due for return on %s.", b.CustomerName, b.EndDate.Format("02 Jan 2006"))
			if s.raiseFromScan(ctx, now, b.TenantID, domain.AlertUpcomingReturn, msg) {
				raised++
			}
		}
	}

	if items, err := s.itemRepo.ListByStatus(ctx, domain.ItemStatusMaintenance); err != nil {
		logger.Error("Scan failed to list maintenance items", "error", err)
	} else {
		for _, it := range items {
			msg := fmt.Sprintf("%s is currently under maintenance.", it.Name)
			if s.raiseFromScan(ctx, now, it.TenantID, domain.AlertMaintenanceItem, msg) {
				raised++
			}
		}
	}

	return raised, nil
}

// raiseFromScan applies the optional dedupe window before raising. With the
// window at zero every pass re-raises, matching the reference behavior.
func (s *alertService) raiseFromScan(ctx context.Context, now time.Time, tenantID uuid.UUID, alertType, message string) bool {
	if s.cfg.DedupeWindowHrs > 0 {
		since := now.Add(-time.Duration(s.cfg.DedupeWindowHrs) * time.Hour)
		exists, err := s.alertRepo.ExistsSince(ctx, tenantID, alertType, message, since)
		if err != nil {
			logger.Warn("Dedupe check failed, raising anyway", "tenant_id", tenantID, "type", alertType, "error", err)
		} else if exists {
			return false
		}
	}

	if _, err := s.Raise(ctx, tenantID, alertType, message); err != nil {
		logger.Error("Scan failed to raise alert", "tenant_id", tenantID, "type", alertType, "error", err)
		return false
	}
	return true
}

func (s *alertService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Alert, error) {
	return s.alertRepo.ListByTenant(ctx, tenantID)
}

func (s *alertService) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return mapRepoErr(s.alertRepo.MarkAsRead(ctx, id))
}

func (s *alertService) Clear(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	return s.alertRepo.DeleteByTenant(ctx, tenantID)
}
