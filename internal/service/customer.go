package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rently-backend/internal/domain"
	"rently-backend/internal/logger"
	"rently-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	alerts       AlertService
}

func NewCustomerService(customerRepo repository.CustomerRepository, alerts AlertService) CustomerService {
	return &customerService{customerRepo: customerRepo, alerts: alerts}
}

func (s *customerService) Create(ctx context.Context, customer *domain.Customer) error {
	if customer.FullName == "" || customer.Email == "" {
		return fmt.Errorf("%w: customer name and email are required", ErrValidation)
	}

	// Email is unique per tenant; bookings look customers up by it.
	existing, err := s.customerRepo.GetByEmail(ctx, customer.TenantID, customer.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: a customer with email %s already exists", ErrConflict, customer.Email)
	}

	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedOn = time.Now().UTC()

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	s.notify(ctx, customer.TenantID, "success", fmt.Sprintf("New customer %s was registered.", customer.FullName))
	return nil
}

func (s *customerService) Get(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, customer *domain.Customer) error {
	if customer.FullName == "" || customer.Email == "" {
		return fmt.Errorf("%w: customer name and email are required", ErrValidation)
	}

	if other, err := s.customerRepo.GetByEmail(ctx, customer.TenantID, customer.Email); err == nil && other.ID != customer.ID {
		return fmt.Errorf("%w: a customer with email %s already exists", ErrConflict, customer.Email)
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return mapRepoErr(err)
	}

	s.notify(ctx, customer.TenantID, "info", fmt.Sprintf("Customer %s was updated.", customer.FullName))
	return nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepoErr(err)
	}

	if err := s.customerRepo.Delete(ctx, id); err != nil {
		return mapRepoErr(err)
	}

	s.notify(ctx, customer.TenantID, "warning", fmt.Sprintf("Customer %s was removed.", customer.FullName))
	return nil
}

func (s *customerService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Customer, error) {
	return s.customerRepo.ListByTenant(ctx, tenantID)
}

func (s *customerService) notify(ctx context.Context, tenantID uuid.UUID, alertType, message string) {
	if _, err := s.alerts.Raise(ctx, tenantID, alertType, message); err != nil {
		logger.SideEffectFailed("raise_alert", err, "tenant_id", tenantID)
	}
}
