package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rently-backend/internal/domain"
	"rently-backend/internal/repository"
	"rently-backend/internal/service"
)

func TestCustomerService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		alerts := new(MockAlertService)
		svc := service.NewCustomerService(customerRepo, alerts)

		customerRepo.On("GetByEmail", ctx, tenantID, "priya@example.com").Return(nil, repository.ErrNotFound)
		customerRepo.On("Create", ctx, mock.AnythingOfType("*domain.Customer")).Return(nil)
		alerts.On("Raise", ctx, tenantID, "success", mock.Anything).Return(&domain.Alert{}, nil)

		customer := &domain.Customer{TenantID: tenantID, FullName: "Priya Sharma", Email: "priya@example.com"}
		assert.NoError(t, svc.Create(ctx, customer))
		assert.NotEqual(t, uuid.Nil, customer.ID)
		assert.False(t, customer.CreatedOn.IsZero())
	})

	t.Run("DuplicateEmailWithinTenant", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		svc := service.NewCustomerService(customerRepo, new(MockAlertService))

		existing := &domain.Customer{ID: uuid.New(), TenantID: tenantID, Email: "priya@example.com"}
		customerRepo.On("GetByEmail", ctx, tenantID, "priya@example.com").Return(existing, nil)

		err := svc.Create(ctx, &domain.Customer{TenantID: tenantID, FullName: "Priya Sharma", Email: "priya@example.com"})
		assert.ErrorIs(t, err, service.ErrConflict)
		customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc := service.NewCustomerService(new(MockCustomerRepo), new(MockAlertService))
		err := svc.Create(ctx, &domain.Customer{TenantID: tenantID, FullName: "", Email: ""})
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestCustomerService_Update(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	customerID := uuid.New()

	t.Run("EmailTakenByAnotherCustomer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		svc := service.NewCustomerService(customerRepo, new(MockAlertService))

		other := &domain.Customer{ID: uuid.New(), TenantID: tenantID, Email: "priya@example.com"}
		customerRepo.On("GetByEmail", ctx, tenantID, "priya@example.com").Return(other, nil)

		err := svc.Update(ctx, &domain.Customer{ID: customerID, TenantID: tenantID, FullName: "Priya Sharma", Email: "priya@example.com"})
		assert.ErrorIs(t, err, service.ErrConflict)
	})

	t.Run("KeepingOwnEmailIsFine", func(t *testing.T) {
		customerRepo := new(MockCustomerRepo)
		alerts := new(MockAlertService)
		svc := service.NewCustomerService(customerRepo, alerts)

		self := &domain.Customer{ID: customerID, TenantID: tenantID, Email: "priya@example.com"}
		customerRepo.On("GetByEmail", ctx, tenantID, "priya@example.com").Return(self, nil)
		customerRepo.On("Update", ctx, mock.AnythingOfType("*domain.Customer")).Return(nil)
		alerts.On("Raise", ctx, tenantID, "info", mock.Anything).Return(&domain.Alert{}, nil)

		err := svc.Update(ctx, &domain.Customer{ID: customerID, TenantID: tenantID, FullName: "Priya Sharma", Email: "priya@example.com"})
		assert.NoError(t, err)
	})
}
