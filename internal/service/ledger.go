package service

import (
	"context"

	"github.com/google/uuid"

	"rently-backend/internal/domain"
	"rently-backend/internal/repository"
)

type availabilityLedger struct {
	itemRepo repository.InventoryRepository
}

func NewAvailabilityLedger(itemRepo repository.InventoryRepository) AvailabilityLedger {
	return &availabilityLedger{itemRepo: itemRepo}
}

func (l *availabilityLedger) TryReserve(ctx context.Context, itemID, tenantID uuid.UUID) error {
	if err := l.itemRepo.ReserveIfAvailable(ctx, itemID, tenantID); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

func (l *availabilityLedger) Release(ctx context.Context, itemID uuid.UUID) error {
	return l.MarkAvailable(ctx, itemID)
}

func (l *availabilityLedger) MarkRented(ctx context.Context, itemID uuid.UUID) error {
	return mapRepoErr(l.itemRepo.UpdateStatus(ctx, itemID, domain.ItemStatusRented))
}

func (l *availabilityLedger) MarkAvailable(ctx context.Context, itemID uuid.UUID) error {
	return mapRepoErr(l.itemRepo.UpdateStatus(ctx, itemID, domain.ItemStatusAvailable))
}

func (l *availabilityLedger) MarkMaintenance(ctx context.Context, itemID uuid.UUID) error {
	return mapRepoErr(l.itemRepo.UpdateStatus(ctx, itemID, domain.ItemStatusMaintenance))
}

// ApplyBookingStatus is only invoked when a booking's status actually
// changed, so the Completed branch increments timesRented exactly once per
// transition.
func (l *availabilityLedger) ApplyBookingStatus(ctx context.Context, itemID uuid.UUID, status domain.BookingStatus) error {
	switch status {
	case domain.BookingStatusActive:
		return l.MarkRented(ctx, itemID)
	case domain.BookingStatusCompleted:
		if err := l.MarkAvailable(ctx, itemID); err != nil {
			return err
		}
		return mapRepoErr(l.itemRepo.IncrementTimesRented(ctx, itemID))
	case domain.BookingStatusCancelled:
		return l.MarkAvailable(ctx, itemID)
	default:
		return nil
	}
}
