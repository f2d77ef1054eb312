package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"rently-backend/internal/domain"
	"rently-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
}

func NewRentalService(rentalRepo repository.RentalRepository) RentalService {
	return &rentalService{rentalRepo: rentalRepo}
}

func (s *rentalService) Get(ctx context.Context, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	return rental, nil
}

func (s *rentalService) List(ctx context.Context, tenantID uuid.UUID) ([]domain.Rental, error) {
	return s.rentalRepo.ListByTenant(ctx, tenantID)
}

// Complete closes the rental and stamps the return date. Completing an
// already-completed rental is a no-op.
func (s *rentalService) Complete(ctx context.Context, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if rental.Status == domain.RentalStatusCompleted {
		return rental, nil
	}

	now := time.Now().UTC()
	rental.Status = domain.RentalStatusCompleted
	rental.ReturnDate = &now
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, mapRepoErr(err)
	}
	return rental, nil
}
