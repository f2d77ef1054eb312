package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rently-backend/internal/config"
	"rently-backend/internal/domain"
	"rently-backend/internal/repository"
	"rently-backend/internal/utils"
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	itemRepo      repository.InventoryRepository
	cfg           config.AnalyticsConfig
}

func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, itemRepo repository.InventoryRepository, cfg config.AnalyticsConfig) AnalyticsService {
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		itemRepo:      itemRepo,
		cfg:           cfg,
	}
}

// Upsert refreshes the booking's analytics row from the item's current
// per-day price. Revenue therefore tracks the live price, not the price at
// booking time; the rental record keeps the original snapshot.
func (s *analyticsService) Upsert(ctx context.Context, tenantID uuid.UUID, booking *domain.Booking) error {
	item, err := s.itemRepo.GetByID(ctx, booking.InventoryItemID)
	if err != nil {
		return mapRepoErr(err)
	}

	entry := &domain.AnalyticsLog{
		TenantID:     tenantID,
		BookingID:    booking.ID,
		CustomerName: booking.CustomerName,
		Category:     item.Category,
		Condition:    item.Condition,
		PriceCents:   item.PriceCents,
		RevenueCents: utils.RevenueCents(item.PriceCents, booking.StartDate, booking.EndDate),
		Status:       string(booking.Status),
		StartDate:    booking.StartDate,
		EndDate:      booking.EndDate,
		LoggedAt:     time.Now().UTC(),
	}

	existing, err := s.analyticsRepo.GetByBookingID(ctx, booking.ID)
	switch {
	case err == nil:
		entry.ID = existing.ID
		return s.analyticsRepo.Update(ctx, entry)
	case errors.Is(err, repository.ErrNotFound):
		return s.analyticsRepo.Insert(ctx, entry)
	default:
		return err
	}
}

func (s *analyticsService) Summary(ctx context.Context, tenantID uuid.UUID) (*domain.AnalyticsSummary, error) {
	return s.analyticsRepo.Summary(ctx, tenantID)
}

func (s *analyticsService) Trend(ctx context.Context, tenantID uuid.UUID, metric string) ([]domain.TrendPoint, error) {
	since := time.Now().UTC().AddDate(0, 0, -s.cfg.TrendWindowDays)
	switch metric {
	case "revenue":
		return s.analyticsRepo.RevenueTrend(ctx, tenantID, since)
	case "bookings":
		return s.analyticsRepo.BookingTrend(ctx, tenantID, since)
	default:
		return nil, fmt.Errorf("%w: unknown trend metric %q", ErrValidation, metric)
	}
}

func (s *analyticsService) Recent(ctx context.Context, tenantID uuid.UUID) ([]domain.AnalyticsLog, error) {
	return s.analyticsRepo.Recent(ctx, tenantID, s.cfg.RecentLimit)
}
