package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"rently-backend/internal/domain"
	"rently-backend/internal/repository"
)

type tenantService struct {
	tenantRepo repository.TenantRepository
}

func NewTenantService(tenantRepo repository.TenantRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo}
}

func (s *tenantService) Register(ctx context.Context, tenant *domain.Tenant) error {
	if tenant.Name == "" {
		return fmt.Errorf("%w: tenant name is required", ErrValidation)
	}

	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	tenant.CreatedOn = time.Now().UTC()

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return fmt.Errorf("failed to register tenant: %w", err)
	}
	return nil
}

func (s *tenantService) Get(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return tenant, nil
}

func (s *tenantService) Update(ctx context.Context, tenant *domain.Tenant) error {
	if tenant.Name == "" {
		return fmt.Errorf("%w: tenant name is required", ErrValidation)
	}
	return mapRepoErr(s.tenantRepo.Update(ctx, tenant))
}
