package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rently-backend/internal/domain"
	"rently-backend/internal/fanout"
	"rently-backend/internal/logger"
	"rently-backend/internal/repository"
	"rently-backend/internal/utils"
)

// analyticsEvent is the AnalyticsUpdated payload pushed to tenant dashboards.
type analyticsEvent struct {
	TenantID  string `json:"tenantId"`
	BookingID string `json:"bookingId"`
	Action    string `json:"action"`
	Status    string `json:"status,omitempty"`
}

type bookingService struct {
	bookingRepo  repository.BookingRepository
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.InventoryRepository
	ledger       AvailabilityLedger
	analytics    AnalyticsService
	alerts       AlertService
	hub          Fanout
	emailSvc     EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.InventoryRepository,
	ledger AvailabilityLedger,
	analytics AnalyticsService,
	alerts AlertService,
	hub Fanout,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		ledger:       ledger,
		analytics:    analytics,
		alerts:       alerts,
		hub:          hub,
		emailSvc:     emailSvc,
	}
}

func (s *bookingService) Create(ctx context.Context, tenantID, itemID uuid.UUID, customerEmail string, start, end time.Time) (*domain.Booking, *domain.Rental, error) {
	if customerEmail == "" {
		return nil, nil, fmt.Errorf("%w: customer email is required", ErrValidation)
	}
	if end.Before(start) {
		return nil, nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}

	customer, err := s.customerRepo.GetByEmail(ctx, tenantID, customerEmail)
	if err != nil {
		return nil, nil, mapRepoErr(err)
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, nil, mapRepoErr(err)
	}
	if item.TenantID != tenantID {
		return nil, nil, ErrNotFound
	}

	// Reservation is won or lost right here; everything after runs only for
	// the single winner.
	if err := s.ledger.TryReserve(ctx, itemID, tenantID); err != nil {
		return nil, nil, err
	}

	booking := &domain.Booking{
		ID:              uuid.New(),
		TenantID:        tenantID,
		CustomerID:      customer.ID,
		InventoryItemID: itemID,
		CustomerName:    customer.FullName,
		CustomerEmail:   customer.Email,
		Status:          domain.BookingStatusReserved,
		StartDate:       start,
		EndDate:         end,
		CreatedOn:       time.Now().UTC(),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		if relErr := s.ledger.Release(ctx, itemID); relErr != nil {
			logger.SideEffectFailed("release_reservation", relErr, "item_id", itemID)
		}
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}

	outstanding := utils.RevenueCents(item.PriceCents, start, end)
	rental := &domain.Rental{
		TenantID:         tenantID,
		ItemID:           itemID,
		CustomerID:       customer.ID,
		StartDate:        start,
		DueDate:          end,
		Status:           domain.RentalStatusActive,
		PriceCents:       item.PriceCents,
		AmountPaidCents:  0,
		OutstandingCents: outstanding,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, nil, fmt.Errorf("failed to create rental record: %w", err)
	}

	s.afterCreate(ctx, booking, item)
	return booking, rental, nil
}

// afterCreate fans out the best-effort consequences of a created booking.
// None of them can fail the creation that already happened.
func (s *bookingService) afterCreate(ctx context.Context, booking *domain.Booking, item *domain.InventoryItem) {
	if err := s.analytics.Upsert(ctx, booking.TenantID, booking); err != nil {
		logger.SideEffectFailed("analytics_upsert", err, "booking_id", booking.ID)
	}

	msg := fmt.Sprintf("A new booking was created for %s (%s) from %s to %s. Rental record created automatically.",
		booking.CustomerName, item.Name,
		booking.StartDate.Format("02 Jan 2006"), booking.EndDate.Format("02 Jan 2006"))
	if _, err := s.alerts.Raise(ctx, booking.TenantID, domain.AlertBookingCreated, msg); err != nil {
		logger.SideEffectFailed("raise_alert", err, "booking_id", booking.ID)
	}

	s.publishAnalyticsUpdated(booking, "created")

	if booking.CustomerEmail != "" {
		if err := s.emailSvc.SendBookingConfirmation(ctx, booking.CustomerEmail, booking.CustomerName, item.Name, booking.StartDate, booking.EndDate); err != nil {
			logger.SideEffectFailed("send_email", err, "booking_id", booking.ID, "to", booking.CustomerEmail)
		}
	}
}

func (s *bookingService) Update(ctx context.Context, bookingID uuid.UUID, upd BookingUpdate) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	prevStatus := booking.Status
	if upd.CustomerName != nil {
		booking.CustomerName = *upd.CustomerName
	}
	if upd.CustomerEmail != nil {
		booking.CustomerEmail = *upd.CustomerEmail
	}
	if upd.StartDate != nil {
		booking.StartDate = *upd.StartDate
	}
	if upd.EndDate != nil {
		booking.EndDate = *upd.EndDate
	}
	if upd.Status != nil {
		booking.Status = *upd.Status
	}
	if booking.EndDate.Before(booking.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrValidation)
	}

	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	// The item transition table only fires on an actual status change, so
	// re-saving a Completed booking never double-counts timesRented.
	if booking.Status != prevStatus {
		if err := s.ledger.ApplyBookingStatus(ctx, booking.InventoryItemID, booking.Status); err != nil {
			return nil, fmt.Errorf("failed to update item availability: %w", err)
		}
	}

	s.afterUpdate(ctx, booking, prevStatus)
	return booking, nil
}

func (s *bookingService) afterUpdate(ctx context.Context, booking *domain.Booking, prevStatus domain.BookingStatus) {
	if err := s.analytics.Upsert(ctx, booking.TenantID, booking); err != nil {
		logger.SideEffectFailed("analytics_upsert", err, "booking_id", booking.ID)
	}

	if booking.Status != prevStatus {
		var alertType, msg string
		switch booking.Status {
		case domain.BookingStatusCompleted:
			alertType = domain.AlertBookingCompleted
			msg = fmt.Sprintf("Booking for %s has been completed successfully.", booking.CustomerName)
		case domain.BookingStatusCancelled:
			alertType = domain.AlertBookingCancelled
			msg = fmt.Sprintf("Booking for %s was cancelled.", booking.CustomerName)
		}
		if alertType != "" {
			if _, err := s.alerts.Raise(ctx, booking.TenantID, alertType, msg); err != nil {
				logger.SideEffectFailed("raise_alert", err, "booking_id", booking.ID)
			}
		}
		if booking.Status == domain.BookingStatusCompleted && booking.CustomerEmail != "" {
			itemName := ""
			if item, err := s.itemRepo.GetByID(ctx, booking.InventoryItemID); err == nil {
				itemName = item.Name
			}
			if err := s.emailSvc.SendBookingCompletion(ctx, booking.CustomerEmail, booking.CustomerName, itemName); err != nil {
				logger.SideEffectFailed("send_email", err, "booking_id", booking.ID, "to", booking.CustomerEmail)
			}
		}
	}

	s.publishAnalyticsUpdated(booking, "updated")
}

// Delete removes the booking row and releases its item. Rental and analytics
// records survive so tenant history and revenue stay intact.
func (s *bookingService) Delete(ctx context.Context, bookingID uuid.UUID) (uuid.UUID, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return uuid.Nil, mapRepoErr(err)
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		return uuid.Nil, mapRepoErr(err)
	}

	if err := s.ledger.Release(ctx, booking.InventoryItemID); err != nil {
		logger.SideEffectFailed("release_reservation", err, "item_id", booking.InventoryItemID)
	}

	msg := fmt.Sprintf("Booking for %s has been deleted.", booking.CustomerName)
	if _, err := s.alerts.Raise(ctx, booking.TenantID, domain.AlertBookingDeleted, msg); err != nil {
		logger.SideEffectFailed("raise_alert", err, "booking_id", booking.ID)
	}

	s.publishAnalyticsUpdated(booking, "deleted")
	return booking.TenantID, nil
}

func (s *bookingService) Get(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return booking, nil
}

func (s *bookingService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Booking, error) {
	return s.bookingRepo.ListByTenant(ctx, tenantID)
}

func (s *bookingService) publishAnalyticsUpdated(booking *domain.Booking, action string) {
	payload := analyticsEvent{
		TenantID:  booking.TenantID.String(),
		BookingID: booking.ID.String(),
		Action:    action,
		Status:    string(booking.Status),
	}
	if err := s.hub.Publish(booking.TenantID.String(), fanout.EventAnalyticsUpdated, payload); err != nil {
		logger.SideEffectFailed("publish_event", err, "booking_id", booking.ID, "action", action)
	}
}
