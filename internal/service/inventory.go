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

type inventoryService struct {
	itemRepo repository.InventoryRepository
	alerts   AlertService
}

func NewInventoryService(itemRepo repository.InventoryRepository, alerts AlertService) InventoryService {
	return &inventoryService{itemRepo: itemRepo, alerts: alerts}
}

func (s *inventoryService) Create(ctx context.Context, item *domain.InventoryItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if item.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	if item.Status == "" {
		item.Status = domain.ItemStatusAvailable
	}
	now := time.Now().UTC()
	item.CreatedOn = now
	item.UpdatedOn = now

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}

	s.notify(ctx, item.TenantID, "success", fmt.Sprintf("%s was added to inventory.", item.Name))
	return nil
}

func (s *inventoryService) Get(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return item, nil
}

func (s *inventoryService) Update(ctx context.Context, item *domain.InventoryItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: item name is required", ErrValidation)
	}
	if item.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	item.UpdatedOn = time.Now().UTC()
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return mapRepoErr(err)
	}

	s.notify(ctx, item.TenantID, "info", fmt.Sprintf("%s was updated.", item.Name))
	return nil
}

func (s *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return mapRepoErr(err)
	}

	s.notify(ctx, item.TenantID, "warning", fmt.Sprintf("%s was removed from inventory.", item.Name))
	return nil
}

func (s *inventoryService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.InventoryItem, error) {
	return s.itemRepo.ListByTenant(ctx, tenantID)
}

func (s *inventoryService) notify(ctx context.Context, tenantID uuid.UUID, alertType, message string) {
	if _, err := s.alerts.Raise(ctx, tenantID, alertType, message); err != nil {
		logger.SideEffectFailed("raise_alert", err, "tenant_id", tenantID)
	}
}
